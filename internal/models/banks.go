package models

// Banks is the fixed list of supported institutions. The payment form only
// accepts one of these values.
var Banks = []string{
	"Access Bank",
	"GTBank",
	"Zenith Bank",
	"First Bank",
	"UBA",
	"FCMB",
	"Union Bank",
	"Sterling Bank",
	"Fidelity Bank",
	"EcoBank",
	"Polaris Bank",
	"Wema Bank",
	"Heritage Bank",
	"Jaiz Bank",
	"Keystone Bank",
	"Stanbic IBTC Bank",
	"Unity Bank",
	"Opay",
	"Kuda Bank",
	"PalmPay",
	"Moniepoint",
	"Rubies Bank",
	"VFD Microfinance Bank",
}

// AccountNames is the pool the simulated account lookup draws from. A real
// deployment would replace the lookup with a bank verification call.
var AccountNames = []string{
	"John Doe",
	"Mary Johnson",
	"David Smith",
	"Chinedu Okafor",
	"Fatima Hassan",
}

// IsSupportedBank reports whether name is one of the fixed institutions.
func IsSupportedBank(name string) bool {
	for _, b := range Banks {
		if b == name {
			return true
		}
	}
	return false
}
