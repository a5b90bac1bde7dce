package entity

// FuelType is the propulsion type of a listing.
type FuelType string

const (
	FuelGasoline FuelType = "Gasoline"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
)

// Transmission is the gearbox type of a listing.
type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

// Condition distinguishes new stock from pre-owned stock.
type Condition string

const (
	ConditionNew  Condition = "New"
	ConditionUsed Condition = "Used"
)

// Tag is the optional merchandising badge shown on a listing.
type Tag string

const (
	TagBestDeal   Tag = "Best Deal"
	TagNewArrival Tag = "New Arrival"
	TagTrending   Tag = "Trending"
)

// CarDraft is the listing form payload: a car without its identity or owner.
type CarDraft struct {
	Make         string       `json:"make" yaml:"make" validate:"required"`
	Model        string       `json:"model" yaml:"model" validate:"required"`
	Year         int          `json:"year" yaml:"year" validate:"required,gte=1886,lte=2100"`
	Price        int64        `json:"price" yaml:"price" validate:"gte=0"`
	Mileage      int64        `json:"mileage" yaml:"mileage" validate:"gte=0"`
	FuelType     FuelType     `json:"fuelType" yaml:"fuelType" validate:"required,oneof=Gasoline Diesel Electric Hybrid"`
	Transmission Transmission `json:"transmission" yaml:"transmission" validate:"required,oneof=Automatic Manual"`
	Engine       string       `json:"engine" yaml:"engine"`
	Horsepower   int          `json:"horsepower" yaml:"horsepower" validate:"gte=0"`
	Features     []string     `json:"features" yaml:"features"`
	Images       []string     `json:"images" yaml:"images" validate:"min=1,max=3,dive,required"`
	Description  string       `json:"description" yaml:"description"`
	Condition    Condition    `json:"condition" yaml:"condition" validate:"required,oneof=New Used"`
	Tag          Tag          `json:"tag,omitempty" yaml:"tag,omitempty" validate:"omitempty,oneof='Best Deal' 'New Arrival' 'Trending'"`
}

// Car is a vehicle listing.
type Car struct {
	ID       int64  `json:"id" yaml:"id"`
	DealerID string `json:"dealerId" yaml:"dealerId"`

	CarDraft `yaml:",inline"`
}

// NewCar builds a listing from a draft.
func NewCar(id int64, dealerID string, draft CarDraft) Car {
	return Car{
		ID:       id,
		DealerID: dealerID,
		CarDraft: draft.Clone(),
	}
}

// Clone returns a copy whose slices are not shared with d.
func (d CarDraft) Clone() CarDraft {
	out := d
	if d.Features != nil {
		out.Features = append([]string(nil), d.Features...)
	}
	if d.Images != nil {
		out.Images = append([]string(nil), d.Images...)
	}

	return out
}

// Clone returns a copy whose slices are not shared with c.
func (c Car) Clone() Car {
	out := c
	out.CarDraft = c.CarDraft.Clone()

	return out
}

// OwnedBy reports whether the listing belongs to the given dealer.
func (c Car) OwnedBy(dealerID string) bool {
	return c.DealerID == dealerID
}
