package models

// Role values the shop API hands back on /users/me and /users/login.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Role    string  `json:"role"`
	Address Address `json:"address"`
}

// Address uses the upstream field names verbatim, including the
// hyphenated direction key.
type Address struct {
	Region           string `json:"region"`
	AddressDirection string `json:"address-direction"`
	Phone            string `json:"phone"`
	Building         string `json:"building"`
	Floor            string `json:"floor"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
