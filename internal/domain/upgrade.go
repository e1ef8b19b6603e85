package domain

// Upgrade buys the next level of b when its cost is strictly below the
// account balance. Either both the debit and the level change happen or
// neither does.
func Upgrade(acct *Account, b *Business) bool {
	if acct == nil || b == nil {
		return false
	}
	if !(b.upgradeCost < acct.Cash()) {
		return false
	}
	acct.Spend(b.upgradeCost)
	b.Upgrade()
	return true
}
