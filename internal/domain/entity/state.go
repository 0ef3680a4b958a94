package entity

// State es la única fuente de verdad del inventario y la unidad completa de
// persistencia: se guarda y se carga siempre entero. Los slices conservan el
// orden de inserción (para Transactions, orden cronológico).
type State struct {
	Products     []Product     `json:"products"`
	Categories   []Category    `json:"categories"`
	Transactions []Transaction `json:"transactions"`
}

// Clone devuelve una copia profunda del estado. Los lectores trabajan sobre
// la copia; el estado autoritativo nunca se comparte mutable.
func (s *State) Clone() *State {
	c := &State{
		Products:     make([]Product, len(s.Products)),
		Categories:   make([]Category, len(s.Categories)),
		Transactions: make([]Transaction, len(s.Transactions)),
	}
	copy(c.Products, s.Products)
	copy(c.Categories, s.Categories)
	copy(c.Transactions, s.Transactions)
	return c
}

// FindProduct devuelve el índice del producto con el ID dado, o -1.
func (s *State) FindProduct(id string) int {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return i
		}
	}
	return -1
}

// FindCategory devuelve el índice de la categoría con el ID dado, o -1.
func (s *State) FindCategory(id string) int {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return i
		}
	}
	return -1
}
