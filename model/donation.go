package model

// Donation is one contribution recorded on the contract
type Donation struct {
	Donor  string `json:"donor"`
	Amount string `json:"amount"`
}
