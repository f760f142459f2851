package cpu

// DoAlu is the arithmetic unit: an 8-bit adder over A and B. Subtraction
// adds the one's complement of B with a carry in of 1, and the carry flag
// is the adder's carry out in both modes.
func DoAlu(a, b uint8, subtract bool) (output uint8, carry, zero bool) {
	operand := uint16(b)
	carryIn := uint16(0)
	if subtract {
		operand = uint16(^b)
		carryIn = 1
	}

	sum := uint16(a) + operand + carryIn

	output = uint8(sum)
	carry = sum > 0xff
	zero = output == 0

	return
}
