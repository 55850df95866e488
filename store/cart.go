package store

// cartLine is a pending order line kept in a shopping session.
//
//merge:generate
type cartLine struct {
	ProductID int64 `merge:"final"`
	Quantity  int
	note      *string `merge:"omitnull"`
}
