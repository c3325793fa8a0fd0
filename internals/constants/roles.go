package constants

const (
	RoleAdmin   = "admin"
	RolePhysio  = "physio"
	RolePatient = "patient"
)

// Specialties yang diakui untuk fisioterapeuta (sesuai ENUM di DB).
var Specialties = []string{
	"Sports",
	"Neurological",
	"Pediatric",
	"Geriatric",
	"Oncological",
}

var (
	AllRoles = []string{
		RoleAdmin,
		RolePhysio,
		RolePatient,
	}

	StaffRoles = []string{
		RoleAdmin,
		RolePhysio,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
