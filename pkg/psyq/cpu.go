package psyq

// CPU identifiers carried by CPU sections. MOTOROLA_68000, MIPS_R3000, and
// HITACHI_SH2 have been observed in real files; the rest are inferred from
// toolchain documentation.
const (
	// CPUMotorola68000 covers the Sega Genesis, Sega CD, Mega Drive, and
	// Mega CD.
	CPUMotorola68000 uint8 = 0
	CPUMotorola68010 uint8 = 1
	CPUMotorola68020 uint8 = 2
	CPUMotorola68030 uint8 = 3
	CPUMotorola68040 uint8 = 4
	// CPUWDC65816 is the SNES's Ricoh 5A22 core.
	CPUWDC65816 uint8 = 5
	// CPUZilogZ80 is the Genesis sound CPU.
	CPUZilogZ80 uint8 = 6
	// CPUMIPSR3000 is the PlayStation 1 core, GTE included.
	CPUMIPSR3000 uint8 = 7
	// CPUHitachiSH2 is the Sega Saturn core.
	CPUHitachiSH2 uint8 = 8
)
