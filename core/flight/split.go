// Package flight splits flight costs between company and employee by a flat
// percentage, or covers an economy fare fully and splits only the upgrade.
package flight

import (
	"github.com/shopspring/decimal"

	"expense-split/core/primitives"
	"expense-split/internal/errors"
)

// DefaultUpgradeCompanyPercent is the company share of a cabin upgrade when
// the caller does not supply one.
const DefaultUpgradeCompanyPercent = 75.0

// Result is a flight split. Every field is rounded to two decimals.
type Result struct {
	CompanyAmount   decimal.Decimal `json:"company_amount" yaml:"company_amount"`
	EmployeeAmount  decimal.Decimal `json:"employee_amount" yaml:"employee_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount" yaml:"total_amount"`
	CompanyPercent  decimal.Decimal `json:"company_percent" yaml:"company_percent"`
	EmployeePercent decimal.Decimal `json:"employee_percent" yaml:"employee_percent"`
}

// SplitFlat charges companyPercent of total to the company.
//
// The employee amount is total minus the already rounded company amount, not
// an independently rounded share, so the two can differ by a cent from
// round2(total × (100 − pct) / 100).
func SplitFlat(total, companyPercent float64) (Result, error) {
	if !primitives.Finite(total, companyPercent) {
		return Result{}, errors.Validation("input", errors.MsgInvalidInput)
	}
	if total < 0 {
		return Result{}, errors.Validation("total", errors.MsgNegativeTotal)
	}
	if companyPercent < 0 || companyPercent > 100 {
		return Result{}, errors.Validation("company_percent", errors.MsgPercentRange)
	}

	t := primitives.FromFloat(total)
	pct := primitives.FromFloat(companyPercent)

	company := primitives.Round2(primitives.Percent(t, pct))
	employee := primitives.Round2(t.Sub(company))

	return Result{
		CompanyAmount:   company,
		EmployeeAmount:  employee,
		TotalAmount:     primitives.Round2(t),
		CompanyPercent:  primitives.Round2(pct),
		EmployeePercent: primitives.Round2(primitives.Complement(pct)),
	}, nil
}

// SplitUpgrade covers economy in full and charges upgradeCompanyPercent of the
// upgrade to the company. The reported percentages describe the whole fare.
func SplitUpgrade(economy, upgrade, upgradeCompanyPercent float64) (Result, error) {
	if !primitives.Finite(economy, upgrade, upgradeCompanyPercent) {
		return Result{}, errors.Validation("input", errors.MsgInvalidInput)
	}
	if economy < 0 || upgrade < 0 {
		return Result{}, errors.Validation("amounts", errors.MsgNegativeAmounts)
	}
	if upgradeCompanyPercent < 0 || upgradeCompanyPercent > 100 {
		return Result{}, errors.Validation("upgrade_company_percent", errors.MsgPercentRange)
	}

	e := primitives.FromFloat(economy)
	u := primitives.FromFloat(upgrade)
	pct := primitives.FromFloat(upgradeCompanyPercent)

	companyOnUpgrade := primitives.Round2(primitives.Percent(u, pct))
	company := primitives.Round2(e.Add(companyOnUpgrade))
	total := primitives.Round2(e.Add(u))
	employee := primitives.Round2(total.Sub(company))

	companyPercent := primitives.Round2(primitives.ShareOf(company, total))

	return Result{
		CompanyAmount:   company,
		EmployeeAmount:  employee,
		TotalAmount:     total,
		CompanyPercent:  companyPercent,
		EmployeePercent: primitives.Round2(primitives.Complement(companyPercent)),
	}, nil
}

// SplitUpgradeDefault is SplitUpgrade at DefaultUpgradeCompanyPercent.
func SplitUpgradeDefault(economy, upgrade float64) (Result, error) {
	return SplitUpgrade(economy, upgrade, DefaultUpgradeCompanyPercent)
}
