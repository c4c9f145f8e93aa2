// Package erp contains the domain types exchanged with the Lumera platform.
//
// All types mirror the backend's JSON shapes exactly; the client never
// reshapes payloads. Optional fields use omitempty so partial updates only
// send what the caller set.
package erp

import "github.com/shopspring/decimal"

// Status is the shared active/inactive lifecycle state used by most entities.
type Status string

// Entity status values
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// User is the authenticated account snapshot returned at login or
// registration time. It is not refreshed except by re-login.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CompanyContext is one membership of the current user in one tenant.
type CompanyContext struct {
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
	RoleID      string `json:"role_id"`
	RoleName    string `json:"role_name"`
	Status      string `json:"status"`
}

// Company is the tenant record returned by company creation.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Employee is a staff record scoped to the active company.
type Employee struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	UserID    string `json:"user_id,omitempty"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Position   string `json:"position,omitempty"`
	Department string `json:"department,omitempty"`

	Status Status `json:"status"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`

	CustomFields map[string]any `json:"custom_fields,omitempty"`
}

// EmployeeInput is the payload for creating or updating an employee.
type EmployeeInput struct {
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	Email        string         `json:"email,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	Position     string         `json:"position,omitempty"`
	Department   string         `json:"department,omitempty"`
	UserID       string         `json:"user_id,omitempty"`
	CustomFields map[string]any `json:"custom_fields,omitempty"`
}

// Client is a customer record scoped to the active company.
type Client struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	TaxID        string         `json:"tax_id,omitempty"`
	Address      string         `json:"address,omitempty"`
	Status       Status         `json:"status"`
	CustomFields map[string]any `json:"custom_fields,omitempty"`
	CreatedAt    string         `json:"created_at,omitempty"`
}

// ClientInput is the payload for creating or updating a client.
type ClientInput struct {
	Name         string         `json:"name"`
	Email        string         `json:"email,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	TaxID        string         `json:"tax_id,omitempty"`
	Address      string         `json:"address,omitempty"`
	CustomFields map[string]any `json:"custom_fields,omitempty"`
}

// Product is a sellable item. Price is decimal to avoid float drift on
// money values.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Description  string          `json:"description,omitempty"`
	Status       Status          `json:"status"`
	CustomFields map[string]any  `json:"custom_fields,omitempty"`
}

// ProductInput is the payload for creating or updating a product.
type ProductInput struct {
	Name         string          `json:"name"`
	SKU          string          `json:"sku,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Description  string          `json:"description,omitempty"`
	CustomFields map[string]any  `json:"custom_fields,omitempty"`
}

// MovementType classifies an inventory movement.
type MovementType string

// Inventory movement types
const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementAdjustment MovementType = "adjustment"
)

// InventoryItem is the current stock level for one product.
type InventoryItem struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Stock     int    `json:"stock"`
}

// InventoryMovement is one stock change event.
type InventoryMovement struct {
	ID            string       `json:"id"`
	ProductID     string       `json:"product_id"`
	MovementType  MovementType `json:"movement_type"`
	Quantity      int          `json:"quantity"`
	Notes         string       `json:"notes,omitempty"`
	CreatedAt     string       `json:"created_at"`
	ProductName   string       `json:"product_name,omitempty"`
	CreatedByName string       `json:"created_by_name,omitempty"`
}

// InventoryAdjustment is the payload for a manual stock adjustment.
type InventoryAdjustment struct {
	ProductID string       `json:"product_id"`
	Quantity  int          `json:"quantity"`
	Type      MovementType `json:"type"`
	Notes     string       `json:"notes,omitempty"`
}

// InventoryDetail is the expanded stock record with its product embedded.
type InventoryDetail struct {
	ID      string `json:"id"`
	Stock   int    `json:"stock"`
	Product struct {
		ID           string         `json:"id"`
		Name         string         `json:"name"`
		SKU          string         `json:"sku"`
		CustomFields map[string]any `json:"custom_fields,omitempty"`
	} `json:"product"`
}

// CompanyUser is a user's membership row within the active company.
type CompanyUser struct {
	CompanyUserID string `json:"company_user_id"`
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Status        Status `json:"status"`
	RoleName      string `json:"role_name,omitempty"`
}

// UserInput is the payload for inviting a user into the active company.
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   string `json:"roleId"`
}

// Role is a named permission set within a company.
type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// RoleInput is the payload for creating a role.
type RoleInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Permission is a single grantable capability key.
type Permission struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// CustomFieldType enumerates the supported custom field value types.
type CustomFieldType string

// Custom field types
const (
	FieldText    CustomFieldType = "text"
	FieldNumber  CustomFieldType = "number"
	FieldDate    CustomFieldType = "date"
	FieldBoolean CustomFieldType = "boolean"
	FieldSelect  CustomFieldType = "select"
)

// CustomFieldOption is one choice of a select-typed custom field.
type CustomFieldOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CustomField is a per-entity field definition (entity is one of
// "employees", "clients", "products").
type CustomField struct {
	ID        string              `json:"id"`
	Entity    string              `json:"entity"`
	FieldKey  string              `json:"field_key"`
	Label     string              `json:"label"`
	FieldType CustomFieldType     `json:"field_type"`
	Required  bool                `json:"required"`
	Options   []CustomFieldOption `json:"options,omitempty"`
	Active    bool                `json:"active,omitempty"`
}

// CustomFieldInput is the payload for creating a custom field definition.
type CustomFieldInput struct {
	Entity    string              `json:"entity"`
	FieldKey  string              `json:"field_key"`
	Label     string              `json:"label"`
	FieldType CustomFieldType     `json:"field_type"`
	Required  bool                `json:"required,omitempty"`
	Options   []CustomFieldOption `json:"options,omitempty"`
}
