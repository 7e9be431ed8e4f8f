package domain

type WarehouseRepository interface {
	ListWarehouses() ([]Warehouse, error)
	GetWarehouseByID(id string) (*Warehouse, error)
}
