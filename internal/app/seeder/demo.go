package seeder

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/expense-tracker/internal/domain"
	"github.com/heartmarshall/expense-tracker/internal/service/expense"
)

// DemoExpenses returns the dashboard sample data, all dated July 2024.
func DemoExpenses() []expense.CreateInput {
	july := func(day int) time.Time {
		return time.Date(2024, time.July, day, 0, 0, 0, 0, time.UTC)
	}
	amount := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

	return []expense.CreateInput{
		{Description: "Lunch with team", Amount: amount(1200), Category: domain.CategoryFood, Date: july(15)},
		{Description: "Monthly metro pass", Amount: amount(500), Category: domain.CategoryTransport, Date: july(1)},
		{Description: "New headphones", Amount: amount(2500), Category: domain.CategoryShopping, Date: july(10)},
		{Description: "Electricity Bill", Amount: amount(800), Category: domain.CategoryUtilities, Date: july(5)},
		{Description: "Movie tickets", Amount: amount(600), Category: domain.CategoryEntertainment, Date: july(20)},
		{Description: "Groceries", Amount: amount(3000), Category: domain.CategoryFood, Date: july(22)},
		{Description: "Apartment Rent", Amount: amount(20000), Category: domain.CategoryRent, Date: july(1)},
		{Description: "Mutual Fund SIP", Amount: amount(5000), Category: domain.CategorySavings, Date: july(5)},
	}
}
