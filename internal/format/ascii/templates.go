package ascii

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/luciano-vc/storeadmin/internal/core/domain"
)

const (
	titleMaxLen = 50
	titleTrunc  = 47
)

var (
	//go:embed users.tmpl
	usersTemplate string

	//go:embed products.tmpl
	productsTemplate string

	//go:embed carts.tmpl
	cartsTemplate string
)

// UsersData holds data for the users template.
type UsersData struct {
	Users []domain.User
}

// ProductsData holds data for the products template.
type ProductsData struct {
	Products []domain.Product
}

// CartsData holds data for the carts template.
type CartsData struct {
	Carts []domain.Cart
}

// Formatter renders domain records as ASCII tables for terminal output.
type Formatter struct {
	users    *template.Template
	products *template.Template
	carts    *template.Template
}

// NewFormatter creates a new Formatter instance.
func NewFormatter() *Formatter {
	funcs := template.FuncMap{
		"truncate": truncate,
	}

	return &Formatter{
		users:    template.Must(template.New("users").Funcs(funcs).Parse(usersTemplate)),
		products: template.Must(template.New("products").Funcs(funcs).Parse(productsTemplate)),
		carts:    template.Must(template.New("carts").Funcs(funcs).Parse(cartsTemplate)),
	}
}

// FormatUsers renders a user collection.
func (f *Formatter) FormatUsers(users []domain.User) (string, error) {
	return f.render(f.users, UsersData{Users: users})
}

// FormatUser renders a single user.
func (f *Formatter) FormatUser(user domain.User) (string, error) {
	return f.FormatUsers([]domain.User{user})
}

// FormatProducts renders a product collection.
func (f *Formatter) FormatProducts(products []domain.Product) (string, error) {
	return f.render(f.products, ProductsData{Products: products})
}

// FormatProduct renders a single product.
func (f *Formatter) FormatProduct(product domain.Product) (string, error) {
	return f.FormatProducts([]domain.Product{product})
}

// FormatCategories renders the category list.
func (f *Formatter) FormatCategories(categories []domain.Category) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Categories (%d):\n", len(categories))
	for _, category := range categories {
		fmt.Fprintf(&b, "  - %s\n", category)
	}

	return b.String()
}

// FormatCarts renders a cart collection.
func (f *Formatter) FormatCarts(carts []domain.Cart) (string, error) {
	return f.render(f.carts, CartsData{Carts: carts})
}

// FormatCart renders a single cart.
func (f *Formatter) FormatCart(cart domain.Cart) (string, error) {
	return f.FormatCarts([]domain.Cart{cart})
}

func (f *Formatter) render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// truncate shortens long titles, counting runes so multi-byte characters are
// never split mid-sequence.
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) > titleMaxLen {
		return string(runes[:titleTrunc]) + "..."
	}

	return s
}
