package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"finance-tracker/internal/dto"
	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/repositories/repository_mocks"
	"finance-tracker/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type PersonServiceSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	uow           *repository_mocks.MockUnitOfWork
	personRepo    *repository_mocks.MockPersonRepositoryInterface
	metrics       *service_mocks.MockMetricsRecorderInterface
	financeLogger *service_mocks.MockFinanceLoggerInterface
	service       PersonServiceInterface
	ctx           context.Context
	person        *models.Person
}

func (s *PersonServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = repository_mocks.NewMockUnitOfWork(s.ctrl)
	s.personRepo = repository_mocks.NewMockPersonRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.financeLogger = service_mocks.NewMockFinanceLoggerInterface(s.ctrl)
	s.service = NewPersonService(func() repositories.UnitOfWork { return s.uow }, s.metrics, s.financeLogger)
	s.ctx = context.Background()

	s.uow.EXPECT().Persons().Return(s.personRepo).AnyTimes()

	s.person = &models.Person{
		ID:   uuid.New(),
		Name: gofakeit.Name(),
		Age:  gofakeit.IntRange(18, 90),
	}
}

func (s *PersonServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPersonServiceSuite(t *testing.T) {
	suite.Run(t, new(PersonServiceSuite))
}

func ageOf(n int) *int {
	return &n
}

func (s *PersonServiceSuite) expectChanged(operation string) {
	s.metrics.EXPECT().IncrementCounter("entity.changed", map[string]string{"entity": "person", "operation": operation})
}

func (s *PersonServiceSuite) TestListPersons() {
	s.personRepo.EXPECT().ListAll(s.ctx).Return([]models.Person{*s.person}, nil)

	res := s.service.ListPersons(s.ctx)

	s.Require().True(res.IsOk())
	s.Equal("persons listed successfully", res.Message())
	s.Require().Len(res.Data(), 1)
	s.Equal(s.person.ID, res.Data()[0].ID)
}

func (s *PersonServiceSuite) TestGetPerson() {
	s.personRepo.EXPECT().FindByID(s.ctx, s.person.ID).Return(s.person, nil)

	res := s.service.GetPerson(s.ctx, s.person.ID)

	s.Require().True(res.IsOk())
	s.Equal("person retrieved successfully", res.Message())
	s.Equal(s.person.Name, res.Data().Name)
}

func (s *PersonServiceSuite) TestGetPerson_NotFound() {
	id := uuid.New()
	s.personRepo.EXPECT().FindByID(s.ctx, id).Return(nil, repositories.ErrPersonNotFound)

	res := s.service.GetPerson(s.ctx, id)

	s.Require().False(res.IsOk())
	s.Equal(apperrors.KindNotFound, res.Err().Kind)
	s.Equal(apperrors.PersonNotFound, res.Err().Code)
}

func (s *PersonServiceSuite) TestCreatePerson() {
	var staged *models.Person
	s.personRepo.EXPECT().Add(gomock.Any()).Do(func(p *models.Person) { staged = p })
	s.uow.EXPECT().Commit(s.ctx).Return(nil)
	s.expectChanged("created")
	s.financeLogger.EXPECT().LogEntityCreated(s.ctx, "person", gomock.Any())

	res := s.service.CreatePerson(s.ctx, dto.CreatePersonRequest{Name: "  Joana  ", Age: ageOf(0)})

	s.Require().True(res.IsOk())
	s.Equal("person created successfully", res.Message())
	s.Require().NotNil(staged)
	s.Equal(staged.ID, res.Data())
	s.Equal("Joana", staged.Name)
	s.Equal(0, staged.Age)
}

func (s *PersonServiceSuite) TestCreatePerson_Invalid() {
	tests := []struct {
		name string
		req  dto.CreatePersonRequest
	}{
		{name: "missing age", req: dto.CreatePersonRequest{Name: "Ana"}},
		{name: "negative age", req: dto.CreatePersonRequest{Name: "Ana", Age: ageOf(-1)}},
		{name: "blank name", req: dto.CreatePersonRequest{Name: "   ", Age: ageOf(30)}},
		{name: "name too long", req: dto.CreatePersonRequest{Name: strings.Repeat("n", 201), Age: ageOf(30)}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			res := s.service.CreatePerson(s.ctx, tt.req)

			s.Require().False(res.IsOk())
			s.Equal(apperrors.KindValidation, res.Err().Kind)
		})
	}
}

func (s *PersonServiceSuite) TestCreatePerson_CommitFailure() {
	dbErr := errors.New("disk full")
	s.personRepo.EXPECT().Add(gomock.Any())
	s.uow.EXPECT().Commit(s.ctx).Return(dbErr)
	s.financeLogger.EXPECT().LogPersistenceFailure(s.ctx, "create_person", dbErr)

	res := s.service.CreatePerson(s.ctx, dto.CreatePersonRequest{Name: "Ana", Age: ageOf(30)})

	s.Require().False(res.IsOk())
	s.Equal(apperrors.KindPersistence, res.Err().Kind)
}

func (s *PersonServiceSuite) TestUpdatePerson() {
	s.personRepo.EXPECT().FindByID(s.ctx, s.person.ID).Return(s.person, nil)
	s.personRepo.EXPECT().Update(s.person)
	s.uow.EXPECT().Commit(s.ctx).Return(nil)
	s.expectChanged("updated")
	s.financeLogger.EXPECT().LogEntityUpdated(s.ctx, "person", s.person.ID)

	res := s.service.UpdatePerson(s.ctx, s.person.ID, dto.UpdatePersonRequest{Name: "Renamed", Age: ageOf(15)})

	s.Require().True(res.IsOk())
	s.Equal("person updated successfully", res.Message())
	s.Equal("Renamed", res.Data().Name)
	s.Equal(15, res.Data().Age)
}

func (s *PersonServiceSuite) TestUpdatePerson_NotFound() {
	id := uuid.New()
	s.personRepo.EXPECT().FindByID(s.ctx, id).Return(nil, repositories.ErrPersonNotFound)

	res := s.service.UpdatePerson(s.ctx, id, dto.UpdatePersonRequest{Name: "Ana", Age: ageOf(20)})

	s.Require().False(res.IsOk())
	s.Equal(apperrors.KindNotFound, res.Err().Kind)
}

func (s *PersonServiceSuite) TestDeletePerson() {
	s.personRepo.EXPECT().FindByID(s.ctx, s.person.ID).Return(s.person, nil)
	s.personRepo.EXPECT().Delete(s.person.ID)
	s.uow.EXPECT().Commit(s.ctx).Return(nil)
	s.expectChanged("deleted")
	s.financeLogger.EXPECT().LogEntityDeleted(s.ctx, "person", s.person.ID)

	res := s.service.DeletePerson(s.ctx, s.person.ID)

	s.Require().True(res.IsOk())
	s.Equal("person deleted successfully", res.Message())
	s.Equal(s.person.ID, res.Data())
}

func (s *PersonServiceSuite) TestDeletePerson_NotFound() {
	id := uuid.New()
	s.personRepo.EXPECT().FindByID(s.ctx, id).Return(nil, repositories.ErrPersonNotFound)

	res := s.service.DeletePerson(s.ctx, id)

	s.Require().False(res.IsOk())
	s.Equal(apperrors.PersonNotFound, res.Err().Code)
}

func (s *PersonServiceSuite) TestDeletePerson_RemovedConcurrently() {
	s.personRepo.EXPECT().FindByID(s.ctx, s.person.ID).Return(s.person, nil)
	s.personRepo.EXPECT().Delete(s.person.ID)
	s.uow.EXPECT().Commit(s.ctx).Return(repositories.ErrPersonNotFound)

	res := s.service.DeletePerson(s.ctx, s.person.ID)

	s.Require().False(res.IsOk())
	s.Equal(apperrors.KindNotFound, res.Err().Kind)
}
