package checkout

import "regexp"

// Form is the checkout form as submitted. Email is optional; everything
// else is required.
type Form struct {
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
	Province   string `json:"province"`
	City       string `json:"city"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	Notes      string `json:"notes,omitempty"`
}

var (
	phonePattern = regexp.MustCompile(`^09\d{9}$`)
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// Validate applies the per-field rules and returns field name -> message.
// An empty map means the form is valid. Rules are independent; there are no
// cross-field checks, and the input is never mutated.
func Validate(form Form) map[string]string {
	errs := make(map[string]string)

	if form.FullName == "" {
		errs["fullName"] = "نام و نام خانوادگی الزامی است"
	}
	if form.Phone == "" {
		errs["phone"] = "شماره تلفن الزامی است"
	} else if !phonePattern.MatchString(form.Phone) {
		errs["phone"] = "شماره تلفن معتبر نیست"
	}
	if form.Email != "" && !emailPattern.MatchString(form.Email) {
		errs["email"] = "ایمیل معتبر نیست"
	}
	if form.Province == "" {
		errs["province"] = "انتخاب استان الزامی است"
	}
	if form.City == "" {
		errs["city"] = "نام شهر الزامی است"
	}
	if form.Address == "" {
		errs["address"] = "آدرس الزامی است"
	}
	if form.PostalCode == "" {
		errs["postalCode"] = "کد پستی الزامی است"
	}

	return errs
}
