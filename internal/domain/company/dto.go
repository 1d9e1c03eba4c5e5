package company

type CompanyResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	IdentityNumber string `json:"identity_number"`
}

func ToCompanyResponse(c *Company) CompanyResponse {
	return CompanyResponse{
		ID:             c.ID,
		Name:           c.Name,
		IdentityNumber: c.IdentityNumber,
	}
}
