package cpu

const (
	MEM_SIZE  = 16           // Addressable bytes.
	ADDR_MASK = MEM_SIZE - 1 // 4-bit address width.
)

// Memory is the 16 byte store addressed by the MAR. Addresses are taken
// modulo the 4-bit address width, so every address is valid.
type Memory [MEM_SIZE]uint8

// Read returns the byte at the address.
func (mem *Memory) Read(addr uint8) uint8 {
	return mem[addr&ADDR_MASK]
}

// Write commits the byte at the address.
func (mem *Memory) Write(addr uint8, value uint8) {
	mem[addr&ADDR_MASK] = value
}
