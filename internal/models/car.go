package models

// CarBrand enumerates the manufacturers the app knows how to talk to.
type CarBrand string

const (
	BrandTesla      CarBrand = "tesla"
	BrandPorsche    CarBrand = "porsche"
	BrandBMW        CarBrand = "bmw"
	BrandAudi       CarBrand = "audi"
	BrandVolkswagen CarBrand = "volkswagen"
)

// CarLocation is the last reported position of a vehicle.
type CarLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// CarControls are the remotely togglable vehicle features.
type CarControls struct {
	SmartSummon   bool    `json:"smartSummon"`
	HeightSetting float64 `json:"heightSetting"` // 0.0 to 1.0
	AirFlow       bool    `json:"airFlow"`
	Climate       bool    `json:"climate"`
	Camera        bool    `json:"camera"`
}

// Car is a connected vehicle. In this backend cars come only from seeded
// data; there is no live manufacturer API connection.
type Car struct {
	ID            string      `json:"id"`
	Brand         CarBrand    `json:"brand"`
	Model         string      `json:"model"`
	BatteryLevel  float64     `json:"batteryLevel"` // fraction, 0 to 1
	Range         float64     `json:"range"`        // km
	Location      CarLocation `json:"location"`
	IsCharging    bool        `json:"isCharging"`
	ChargingLimit float64     `json:"chargingLimit"` // fraction, 0 to 1
	Temperature   float64     `json:"temperature"`
	Mileage       float64     `json:"mileage"`
	EngineStarted bool        `json:"engineStarted"`
	Controls      CarControls `json:"controls"`
	ExteriorTemp  float64     `json:"exteriorTemp"`
	InteriorTemp  float64     `json:"interiorTemp"`
}
