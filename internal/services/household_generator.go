package services

import (
	"context"
	"fmt"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// every third generated person is a minor
	minorEvery       = 3
	incomeChance     = 30
	minSampleValue   = 5.0
	maxSampleExpense = 500.0
	maxSampleIncome  = 5000.0
)

type sampleCategory struct {
	description string
	purpose     models.Purpose
}

var sampleCategories = []sampleCategory{
	{"Salary", models.PurposeIncome},
	{"Freelance", models.PurposeIncome},
	{"Groceries", models.PurposeExpense},
	{"Rent", models.PurposeExpense},
	{"Utilities", models.PurposeExpense},
	{"School supplies", models.PurposeExpense},
	{"Gifts", models.PurposeBoth},
}

type householdGenerator struct {
	faker        *gofakeit.Faker
	persons      PersonServiceInterface
	categories   CategoryServiceInterface
	transactions TransactionServiceInterface
}

// NewHouseholdGenerator creates a generator of sample households. The same seed
// always yields the same plan.
func NewHouseholdGenerator(
	seed uint64,
	persons PersonServiceInterface,
	categories CategoryServiceInterface,
	transactions TransactionServiceInterface,
) HouseholdGeneratorInterface {
	return &householdGenerator{
		faker:        gofakeit.New(seed),
		persons:      persons,
		categories:   categories,
		transactions: transactions,
	}
}

// Plan builds persons, the fixed sample categories and transactions that
// respect the minor and purpose rules
func (g *householdGenerator) Plan(personCount, transactionCount int) dto.HouseholdPlan {
	plan := dto.HouseholdPlan{}

	for i := 0; i < personCount; i++ {
		age := g.faker.IntRange(models.AdultAge, 85)
		if i%minorEvery == minorEvery-1 {
			age = g.faker.IntRange(4, models.AdultAge-1)
		}
		plan.Persons = append(plan.Persons, dto.CreatePersonRequest{Name: g.faker.Name(), Age: &age})
	}

	for _, c := range sampleCategories {
		plan.Categories = append(plan.Categories, dto.CreateCategoryRequest{
			Description: c.description,
			Purpose:     string(c.purpose),
		})
	}

	if personCount == 0 {
		return plan
	}

	for i := 0; i < transactionCount; i++ {
		personIndex := g.faker.IntRange(0, personCount-1)

		txType := models.TransactionTypeExpense
		if *plan.Persons[personIndex].Age >= models.AdultAge && g.faker.IntRange(1, 100) <= incomeChance {
			txType = models.TransactionTypeIncome
		}

		categoryIndex := g.pickCategory(txType)
		maxValue := maxSampleExpense
		if txType == models.TransactionTypeIncome {
			maxValue = maxSampleIncome
		}

		plan.Transactions = append(plan.Transactions, dto.PlannedTransaction{
			PersonIndex:   personIndex,
			CategoryIndex: categoryIndex,
			Request: dto.CreateTransactionRequest{
				Description: fmt.Sprintf("%s %s", sampleCategories[categoryIndex].description, g.faker.Sentence(3)),
				Value:       decimal.NewFromFloat(g.faker.Price(minSampleValue, maxValue)).Round(2),
				Type:        string(txType),
			},
		})
	}

	return plan
}

func (g *householdGenerator) pickCategory(txType models.TransactionType) int {
	var candidates []int
	for i, c := range sampleCategories {
		if c.purpose.Accepts(txType) {
			candidates = append(candidates, i)
		}
	}
	return candidates[g.faker.IntRange(0, len(candidates)-1)]
}

// Generate plans a household and records it through the regular services, so
// every sample transaction passes the same rules as user input
func (g *householdGenerator) Generate(ctx context.Context, personCount, transactionCount int) (dto.HouseholdSummary, error) {
	plan := g.Plan(personCount, transactionCount)
	summary := dto.HouseholdSummary{}

	personIDs := make([]uuid.UUID, len(plan.Persons))
	for i, req := range plan.Persons {
		res := g.persons.CreatePerson(ctx, req)
		if !res.IsOk() {
			return summary, res.Err()
		}
		personIDs[i] = res.Data()
		summary.PersonsCreated++
	}

	categoryIDs := make([]uuid.UUID, len(plan.Categories))
	for i, req := range plan.Categories {
		res := g.categories.CreateCategory(ctx, req)
		if !res.IsOk() {
			return summary, res.Err()
		}
		categoryIDs[i] = res.Data()
		summary.CategoriesCreated++
	}

	for _, planned := range plan.Transactions {
		req := planned.Request
		req.PersonID = personIDs[planned.PersonIndex]
		req.CategoryID = categoryIDs[planned.CategoryIndex]

		if res := g.transactions.RecordTransaction(ctx, req); res.IsOk() {
			summary.TransactionsCreated++
		} else {
			summary.TransactionsRejected++
		}
	}

	return summary, nil
}
