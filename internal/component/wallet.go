package component

// Wallet holds an entity's money. Money never goes negative; systems
// validate before debiting.
type Wallet struct {
	Money          int
	MaxMoney       int // 0 = uncapped
	IncomeRate     int // credited per income interval, 0 = no income
	LastIncomeTick int
}

// Capped reports whether the wallet has a money cap.
func (w *Wallet) Capped() bool { return w.MaxMoney > 0 }
