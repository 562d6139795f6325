package process

// AccessRights is the capability mask requested when opening a handle to a
// target process. Request the union of rights every later call on that
// handle will need. Values match the Windows PROCESS_* constants.
type AccessRights uint32

const (
	AccessTerminate        AccessRights = 0x0001
	AccessCreateThread     AccessRights = 0x0002
	AccessVMOperation      AccessRights = 0x0008
	AccessVMRead           AccessRights = 0x0010
	AccessVMWrite          AccessRights = 0x0020
	AccessDupHandle        AccessRights = 0x0040
	AccessQueryInfo        AccessRights = 0x0400
	AccessQueryLimitedInfo AccessRights = 0x1000
	AccessSynchronize      AccessRights = 0x00100000
	AccessAll              AccessRights = 0x001F0FFF
)

// Has reports whether every bit of want is present in the mask.
func (ar AccessRights) Has(want AccessRights) bool {
	return ar&want == want
}

// Memory state flags for region queries (MEM_* on Windows).
const (
	MemCommit  uint32 = 0x1000
	MemReserve uint32 = 0x2000
	MemFree    uint32 = 0x10000
)

// Memory type flags for region queries.
const (
	MemPrivate uint32 = 0x20000
	MemMapped  uint32 = 0x40000
	MemImage   uint32 = 0x1000000
)

// Region describes one mapped range of the target address space as reported
// by the platform's region query. The read/write path does not consult it;
// it exists for callers that want to inspect the target's layout.
type Region struct {
	Base    Address
	Size    Size
	State   uint32 // MemCommit, MemReserve or MemFree
	Type    uint32 // MemPrivate, MemMapped or MemImage
	Protect uint32 // platform protection bits, advisory
}

// Contains reports whether addr falls inside the region.
func (r Region) Contains(addr Address) bool {
	return addr >= r.Base && addr < r.Base+Address(r.Size)
}
