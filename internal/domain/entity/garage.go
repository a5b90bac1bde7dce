package entity

// TestDriveStatus is the lifecycle state of a test drive booking.
type TestDriveStatus string

const (
	TestDriveApproved  TestDriveStatus = "Approved"
	TestDrivePending   TestDriveStatus = "Pending"
	TestDriveCompleted TestDriveStatus = "Completed"
	TestDriveCancelled TestDriveStatus = "Cancelled"
)

// TestDrive is a booked test drive. BookingDate is kept as the string the
// booking form submitted.
type TestDrive struct {
	ID          int64           `json:"id" yaml:"id"`
	CarID       int64           `json:"carId" yaml:"carId"`
	BookingDate string          `json:"bookingDate" yaml:"bookingDate"`
	Location    string          `json:"location" yaml:"location"`
	Status      TestDriveStatus `json:"status" yaml:"status"`
}

// Purchase is a completed vehicle purchase.
type Purchase struct {
	ID           int64  `json:"id" yaml:"id"`
	CarID        int64  `json:"carId" yaml:"carId"`
	PurchaseDate string `json:"purchaseDate" yaml:"purchaseDate"`
	PricePaid    int64  `json:"pricePaid" yaml:"pricePaid"`
	Dealership   string `json:"dealership" yaml:"dealership"`
}

// GuestKey is the garage key used when nobody is signed in.
const GuestKey = "guest"

// Garage is a snapshot of the per-user derived data.
type Garage struct {
	Favorites      []int64     `json:"favorites"`
	RecentlyViewed []int64     `json:"recentlyViewed"`
	CompareItems   []int64     `json:"compareItems"`
	TestDrives     []TestDrive `json:"testDrives"`
	Purchases      []Purchase  `json:"purchases"`
}
