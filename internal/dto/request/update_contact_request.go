package request

// UpdateContactRequest carries the fields for PUT /contacts/:id.
// The same shape as creation; the duplicate-name guard excludes the
// contact being updated.
type UpdateContactRequest struct {
	FirstName            string `json:"firstName" binding:"required"`
	MiddleName           string `json:"middleName"`
	LastName             string `json:"lastName"`
	Suffix               string `json:"suffix"`
	Nickname             string `json:"nickname"`
	Mnemonic             string `json:"mnemonic"`
	Summary              string `json:"summary" binding:"max=1000"`
	IntroducedBy         string `json:"introducedBy"`
	Website              string `json:"website"`
	Linkedin             string `json:"linkedin"`
	Instagram            string `json:"instagram"`
	Twitter              string `json:"twitter"`
	JobTitle             string `json:"jobTitle"`
	Company              string `json:"company"`
	MainNationality      string `json:"mainNationality"`
	SecondaryNationality string `json:"secondaryNationality"`
	BirthDay             int16  `json:"birthDay" binding:"min=0,max=31"`
	BirthMonth           int16  `json:"birthMonth" binding:"min=0,max=12"`
	BirthYear            int16  `json:"birthYear" binding:"min=0"`
}
