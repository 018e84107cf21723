package ir

// Program is the fully analyzed, typed form of a source file: every
// import and function the source declares, in declaration order. Each
// Function carries its own Body and Locals once analysis completes.
type Program struct {
	Imports   []*ExternFunction
	Functions []*Function
}
