package model

// KnownCategories are the categories the client UI offers. Storage accepts
// any non-empty name; analytics seeds these five in every month bucket and
// accumulates anything else under its own key.
var KnownCategories = []string{
	"Rental", "Groceries", "Entertainment", "Travel", "Others",
}

// KnownPaymentModes are the payment modes the client UI offers. Like
// categories, the stored set is open.
var KnownPaymentModes = []string{
	"UPI", "Credit Card", "Net Banking", "Cash",
}
