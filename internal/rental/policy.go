package rental

// Action names one menu workflow for authorization purposes.
type Action string

const (
	ActionCreateUser       Action = "create user"
	ActionViewProfile      Action = "view profile"
	ActionUpdateProfile    Action = "update profile"
	ActionViewCatalog      Action = "view catalog"
	ActionPlaceOrder       Action = "place order"
	ActionViewAllOrders    Action = "view all orders"
	ActionViewRecentOrders Action = "view recent orders"
	ActionViewOrderInfo    Action = "view order info"
	ActionViewTrackingInfo Action = "view tracking info"
	ActionUpdateTracking   Action = "update tracking info"
	ActionUpdateCatalog    Action = "update catalog"
	ActionUpdateUser       Action = "update user"
)

// policy maps each action to the roles that may perform it at all.
// Ownership-scoped narrowing is a separate dimension (selfOnly below):
// an allowed customer may still be limited to rows it owns.
var policy = map[Action]map[Role]bool{
	ActionViewProfile:      {RoleCustomer: true, RoleEmployee: true, RoleManager: true},
	ActionUpdateProfile:    {RoleCustomer: true, RoleEmployee: true, RoleManager: true},
	ActionViewCatalog:      {RoleCustomer: true, RoleEmployee: true, RoleManager: true},
	ActionPlaceOrder:       {RoleCustomer: true, RoleEmployee: true, RoleManager: true},
	ActionViewAllOrders:    {RoleCustomer: true, RoleEmployee: true, RoleManager: true},
	ActionViewRecentOrders: {RoleCustomer: true, RoleEmployee: true, RoleManager: true},
	ActionViewOrderInfo:    {RoleCustomer: true, RoleEmployee: true, RoleManager: true},
	ActionViewTrackingInfo: {RoleCustomer: true, RoleEmployee: true, RoleManager: true},
	ActionUpdateTracking:   {RoleEmployee: true, RoleManager: true},
	ActionUpdateCatalog:    {RoleManager: true},
	ActionUpdateUser:       {RoleManager: true},
}

// selfOnly marks the actions where a customer is restricted to its own
// rows (profile, order history, order/tracking lookups).
var selfOnly = map[Action]bool{
	ActionViewProfile:      true,
	ActionViewAllOrders:    true,
	ActionViewRecentOrders: true,
	ActionViewOrderInfo:    true,
	ActionViewTrackingInfo: true,
}

// Allowed reports whether role may perform action at all.
func Allowed(a Action, r Role) bool { return policy[a][r] }

// SelfOnly reports whether role is restricted to rows it owns when
// performing action.
func SelfOnly(a Action, r Role) bool { return r == RoleCustomer && selfOnly[a] }
