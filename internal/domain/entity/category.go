package entity

// Category representa una categoría de productos. La relación con Product es
// por referencia (Product.CategoryID); eliminar una categoría no elimina sus
// productos.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
