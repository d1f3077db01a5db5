package models

func (b Business) GetBusinessId() string {
	return b.ID.String()
}

func (r Region) GetBusinessId() string {
	return r.BusinessId
}

func (c City) GetBusinessId() string {
	return c.BusinessId
}

func (v Vendor) GetBusinessId() string {
	return v.BusinessId
}

func (s Supplier) GetBusinessId() string {
	return s.BusinessId
}

func (u User) GetBusinessId() string {
	return u.BusinessId
}

func (u UserRegion) GetBusinessId() string {
	return u.BusinessId
}

func (s ServiceBooking) GetBusinessId() string {
	return s.BusinessId
}

func (p ProductOrder) GetBusinessId() string {
	return p.BusinessId
}

func (s Subscription) GetBusinessId() string {
	return s.BusinessId
}

func (c CampaignCharge) GetBusinessId() string {
	return c.BusinessId
}
