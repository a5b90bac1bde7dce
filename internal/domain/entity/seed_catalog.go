package entity

// SeedCatalog is the initial state written to storage on first start.
type SeedCatalog struct {
	Cars        []Car
	Users       []StoredPrincipal
	SiteContent SiteContent
	TestDrives  []TestDrive
	Purchases   []Purchase
}
