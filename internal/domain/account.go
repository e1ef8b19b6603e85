package domain

// Account holds the player's cash balance.
//
// Spend is unconditional; callers check affordability first (see Upgrade).
type Account struct {
	cash float64
}

// NewAccount returns an account holding the given opening balance.
func NewAccount(cash float64) Account {
	return Account{cash: cash}
}

// Earn credits a non-negative payout.
func (a *Account) Earn(amount float64) {
	a.cash += amount
}

// Spend debits amount without a balance floor.
func (a *Account) Spend(amount float64) {
	a.cash -= amount
}

// Cash returns the current balance.
func (a Account) Cash() float64 {
	return a.cash
}
