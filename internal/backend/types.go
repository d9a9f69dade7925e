package backend

import "time"

// Record types mirror the backend API's JSON shapes. Field tags are
// camelCase because that is what the backend emits; the gateway passes
// them through untouched.

// Product is a sellable item in the catalog.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	SKU           string    `json:"sku"`
	Barcode       string    `json:"barcode,omitempty"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	Cost          float64   `json:"cost,omitempty"`
	CategoryID    string    `json:"categoryId,omitempty"`
	BrandID       string    `json:"brandId,omitempty"`
	StockQuantity int       `json:"stockQuantity"`
	MinStockLevel int       `json:"minStockLevel,omitempty"`
	IsActive      bool      `json:"isActive"`
	Image         string    `json:"image,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
}

// ProductInput is the create/update payload for a product.
type ProductInput struct {
	Name          string  `json:"name" validate:"required"`
	SKU           string  `json:"sku" validate:"required"`
	Barcode       string  `json:"barcode,omitempty"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Cost          float64 `json:"cost,omitempty"`
	CategoryID    string  `json:"categoryId,omitempty"`
	BrandID       string  `json:"brandId,omitempty"`
	StockQuantity int     `json:"stockQuantity,omitempty"`
	MinStockLevel int     `json:"minStockLevel,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

// Category groups products.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	ParentID     string `json:"parentId,omitempty"`
	ProductCount int    `json:"productCount,omitempty"`
}

// CategoryInput is the create/update payload for a category.
type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parentId,omitempty"`
}

// Brand is a product manufacturer or label.
type Brand struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// BrandInput is the create/update payload for a brand.
type BrandInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// BrandStats is the aggregate returned by the brand stats endpoint.
type BrandStats struct {
	TotalBrands    int `json:"totalBrands"`
	ActiveBrands   int `json:"activeBrands"`
	BrandsInUse    int `json:"brandsInUse"`
	ProductsTagged int `json:"productsTagged"`
}

// Customer is a buyer known to the store.
type Customer struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	LoyaltyPoints int       `json:"loyaltyPoints,omitempty"`
	TotalSpent    float64   `json:"totalSpent,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// CustomerInput is the create/update payload for a customer.
type CustomerInput struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Address string `json:"address,omitempty"`
}

// Supplier provides stock. Suppliers soft-delete: IsActive false keeps
// the record around for restore until a permanent delete.
type Supplier struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ContactName string     `json:"contactName,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Email       string     `json:"email,omitempty"`
	Address     string     `json:"address,omitempty"`
	IsActive    bool       `json:"isActive"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
}

// SupplierInput is the create/update payload for a supplier.
type SupplierInput struct {
	Name        string `json:"name" validate:"required"`
	ContactName string `json:"contactName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Address     string `json:"address,omitempty"`
}

// Store is a physical point of sale.
type Store struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code,omitempty"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	IsActive bool   `json:"isActive"`
}

// StoreInput is the create/update payload for a store.
type StoreInput struct {
	Name    string `json:"name" validate:"required"`
	Code    string `json:"code,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// User is a backend user account (staff member).
type User struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        string          `json:"role"`
	RoleID      string          `json:"roleId,omitempty"`
	Permissions map[string]bool `json:"permissions,omitempty"`
	Image       string          `json:"image,omitempty"`
	IsActive    bool            `json:"isActive"`
	LastLoginAt time.Time       `json:"lastLoginAt,omitempty"`
}

// UserInput is the create/update payload for a user account.
type UserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8"`
	Role     string `json:"role" validate:"required"`
	RoleID   string `json:"roleId,omitempty"`
	StoreID  string `json:"storeId,omitempty"`
}

// InventoryItem is the stock level of one product in one store.
type InventoryItem struct {
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName,omitempty"`
	SKU         string    `json:"sku,omitempty"`
	StoreID     string    `json:"storeId"`
	Quantity    int       `json:"quantity"`
	MinStock    int       `json:"minStock,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// InventoryAdjustment changes one product's stock by a signed delta.
type InventoryAdjustment struct {
	ProductID string `json:"productId" validate:"required"`
	StoreID   string `json:"storeId,omitempty"`
	Delta     int    `json:"delta" validate:"required"`
	Reason    string `json:"reason,omitempty"`
}

// InventoryTransfer moves stock between stores.
type InventoryTransfer struct {
	ProductID   string `json:"productId" validate:"required"`
	FromStoreID string `json:"fromStoreId" validate:"required"`
	ToStoreID   string `json:"toStoreId" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Notes       string `json:"notes,omitempty"`
}

// LowStockAlert flags a product at or below its minimum stock level.
type LowStockAlert struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	SKU         string `json:"sku,omitempty"`
	StoreID     string `json:"storeId,omitempty"`
	Quantity    int    `json:"quantity"`
	MinStock    int    `json:"minStock"`
}

// SaleItem is one line of a sale.
type SaleItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Subtotal  float64 `json:"subtotal,omitempty"`
}

// Sale is a completed or pending transaction.
type Sale struct {
	ID            string     `json:"id"`
	Number        string     `json:"number,omitempty"`
	CustomerID    string     `json:"customerId,omitempty"`
	StoreID       string     `json:"storeId,omitempty"`
	CashierID     string     `json:"cashierId,omitempty"`
	Items         []SaleItem `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	Tax           float64    `json:"tax,omitempty"`
	Discount      float64    `json:"discount,omitempty"`
	Total         float64    `json:"total"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	Status        string     `json:"status,omitempty"`
	CreatedAt     time.Time  `json:"createdAt,omitempty"`
}

// SaleInput is the create payload for a sale.
type SaleInput struct {
	CustomerID    string     `json:"customerId,omitempty"`
	StoreID       string     `json:"storeId,omitempty"`
	Items         []SaleItem `json:"items" validate:"required,min=1,dive"`
	Discount      float64    `json:"discount,omitempty"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
}

// DashboardOverview is the headline metric block on the console home.
type DashboardOverview struct {
	TodaySales     int     `json:"todaySales"`
	TodayRevenue   float64 `json:"todayRevenue"`
	TotalProducts  int     `json:"totalProducts"`
	TotalCustomers int     `json:"totalCustomers"`
	LowStockCount  int     `json:"lowStockCount"`
	PendingOrders  int     `json:"pendingOrders,omitempty"`
}

// Barcode binds a code to a product.
type Barcode struct {
	Code      string `json:"code"`
	ProductID string `json:"productId"`
	Format    string `json:"format,omitempty"`
}

// BarcodeGenerateInput requests fresh codes for a product.
type BarcodeGenerateInput struct {
	ProductID string `json:"productId" validate:"required"`
	Count     int    `json:"count,omitempty"`
	Format    string `json:"format,omitempty"`
}

// BarcodeCheck is the result of a code lookup.
type BarcodeCheck struct {
	Code      string `json:"code"`
	Exists    bool   `json:"exists"`
	ProductID string `json:"productId,omitempty"`
}
