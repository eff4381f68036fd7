package constants

// OrderPolicy selects how the queue filler ranks eligible data.
type OrderPolicy string

// Stable values (store/log these exact strings).
const (
	OrderRandom         OrderPolicy = "random"
	OrderLeastConfident OrderPolicy = "least_confident"
	OrderMargin         OrderPolicy = "margin"
	OrderEntropy        OrderPolicy = "entropy"
)

var allOrderPolicies = []OrderPolicy{
	OrderRandom,
	OrderLeastConfident,
	OrderMargin,
	OrderEntropy,
}

// OrderPolicies returns the allowed policy values as strings.
func OrderPolicies() []string {
	result := make([]string, len(allOrderPolicies))
	for i, p := range allOrderPolicies {
		result[i] = string(p)
	}
	return result
}

// ValidOrderPolicy reports whether p is one of the known policies.
func ValidOrderPolicy(p OrderPolicy) bool {
	for _, known := range allOrderPolicies {
		if p == known {
			return true
		}
	}
	return false
}
