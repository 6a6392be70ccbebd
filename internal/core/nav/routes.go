package nav

// Route names referenced outside the table.
const (
	RouteHome        = "Home"
	RouteLogin       = "Login"
	RouteProducts    = "Products"
	RouteCategories  = "Categories"
	RouteCart        = "Cart"
	RouteUsers       = "Users"
	RouteUserCreate  = "UserCreate"
	RouteUserEdit    = "UserEdit"
	RouteUserDetails = "UserDetails"
	RouteProductNew  = "ProductCreate"
	RouteProductEdit = "ProductEdit"
	RouteProductInfo = "ProductDetails"
	RouteCartCreate  = "CartCreate"
	RouteCartEdit    = "CartEdit"
	RouteCartDetails = "CartDetails"
)

// Routes returns the default route table. Home and Login are public;
// everything else requires a valid session.
func Routes() []Route {
	return []Route{
		{Path: "/", Name: RouteHome},
		{Path: "/login", Name: RouteLogin},
		{Path: "/products", Name: RouteProducts, RequiresAuth: true},
		{Path: "/categories", Name: RouteCategories, RequiresAuth: true},
		{Path: "/categories/:category", Name: "CategoryProducts", RequiresAuth: true},
		{Path: "/product-details/:id", Name: RouteProductInfo, RequiresAuth: true},
		{Path: "/edit-product/:id", Name: RouteProductEdit, RequiresAuth: true},
		{Path: "/create-product", Name: RouteProductNew, RequiresAuth: true},
		{Path: "/cart", Name: RouteCart, RequiresAuth: true},
		{Path: "/create-cart", Name: RouteCartCreate, RequiresAuth: true},
		{Path: "/cart-details/:id", Name: RouteCartDetails, RequiresAuth: true},
		{Path: "/edit-cart/:id", Name: RouteCartEdit, RequiresAuth: true},
		{Path: "/users", Name: RouteUsers, RequiresAuth: true},
		{Path: "/create-user", Name: RouteUserCreate, RequiresAuth: true},
		{Path: "/edit-user/:id", Name: RouteUserEdit, RequiresAuth: true},
		{Path: "/user-details/:id", Name: RouteUserDetails, RequiresAuth: true},
	}
}

// Find locates a route by name in the given table.
func Find(routes []Route, name string) (Route, bool) {
	for _, route := range routes {
		if route.Name == name {
			return route, true
		}
	}

	return Route{}, false
}
