package storage

const (
	ProductsTable   = "Products"
	CustomersTable  = "Customers"
	OrdersTable     = "Orders"
	OrderItemsTable = "Order_Items"
)

type tableDef struct {
	name string
	ddl  string
}

// Referenced tables come before the tables that point to them.
var shopSchema = []tableDef{
	{
		name: ProductsTable,
		ddl: `
CREATE TABLE IF NOT EXISTS Products (
	product_id INTEGER PRIMARY KEY,
	name TEXT,
	description TEXT,
	price REAL,
	stock INTEGER
)`,
	},
	{
		name: CustomersTable,
		ddl: `
CREATE TABLE IF NOT EXISTS Customers (
	customer_id INTEGER PRIMARY KEY,
	first_name TEXT,
	last_name TEXT,
	email TEXT,
	phone TEXT
)`,
	},
	{
		name: OrdersTable,
		ddl: `
CREATE TABLE IF NOT EXISTS Orders (
	order_id INTEGER PRIMARY KEY,
	customer_id INTEGER,
	order_date TEXT,
	total REAL,
	FOREIGN KEY(customer_id) REFERENCES Customers(customer_id)
)`,
	},
	{
		name: OrderItemsTable,
		ddl: `
CREATE TABLE IF NOT EXISTS Order_Items (
	order_item_id INTEGER PRIMARY KEY,
	order_id INTEGER,
	product_id INTEGER,
	quantity INTEGER,
	price REAL,
	FOREIGN KEY(order_id) REFERENCES Orders(order_id),
	FOREIGN KEY(product_id) REFERENCES Products(product_id)
)`,
	},
}

// ShopTables returns the table names EnsureSchema creates, in creation order.
func ShopTables() []string {
	res := make([]string, 0, len(shopSchema))
	for _, t := range shopSchema {
		res = append(res, t.name)
	}
	return res
}
