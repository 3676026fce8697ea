package menu

type Item struct {
	Name  string  `json:"item"`
	Price float64 `json:"price"`
}
