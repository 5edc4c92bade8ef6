package dto

// HouseholdPlan is a batch of sample requests. Planned transactions point at
// persons and categories by their index in the plan.
type HouseholdPlan struct {
	Persons      []CreatePersonRequest
	Categories   []CreateCategoryRequest
	Transactions []PlannedTransaction
}

type PlannedTransaction struct {
	PersonIndex   int
	CategoryIndex int
	Request       CreateTransactionRequest
}

// HouseholdSummary counts what a sample run created
type HouseholdSummary struct {
	PersonsCreated       int `json:"persons_created"`
	CategoriesCreated    int `json:"categories_created"`
	TransactionsCreated  int `json:"transactions_created"`
	TransactionsRejected int `json:"transactions_rejected"`
}
