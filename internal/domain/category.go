package domain

type CategoryID int64

type Category struct {
	ID   CategoryID
	Name string
}
