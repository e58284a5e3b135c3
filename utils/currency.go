package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatINR formats an amount with Indian digit grouping: the last
// three digits form one group, every group before that has two.
// Example: 125000.50 -> "1,25,000.50". Whole amounts carry no decimals.
func FormatINR(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	rounded := math.Round(amount*100) / 100
	intPart := int64(rounded)
	fracPart := int(math.Round((rounded - float64(intPart)) * 100))

	digits := strconv.FormatInt(intPart, 10)

	grouped := digits
	if len(digits) > 3 {
		head := digits[:len(digits)-3]
		grouped = digits[len(digits)-3:]
		for len(head) > 2 {
			grouped = head[len(head)-2:] + "," + grouped
			head = head[:len(head)-2]
		}
		grouped = head + "," + grouped
	}

	if negative {
		grouped = "-" + grouped
	}
	if fracPart > 0 {
		return fmt.Sprintf("%s.%02d", grouped, fracPart)
	}
	return grouped
}
