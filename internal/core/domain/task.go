package domain

// TaskKind enumerates the mutually exclusive build tasks.
type TaskKind int

const (
	TaskUnknown TaskKind = iota
	TaskDownloadTaxonomy
	TaskDownloadLibrary
	TaskAddToLibrary
	TaskBuild
	TaskStandard
	TaskClean
	TaskSpecial
)

// String returns the task flag name for the kind.
func (k TaskKind) String() string {
	switch k {
	case TaskDownloadTaxonomy:
		return "download-taxonomy"
	case TaskDownloadLibrary:
		return "download-library"
	case TaskAddToLibrary:
		return "add-to-library"
	case TaskBuild:
		return "build"
	case TaskStandard:
		return "standard"
	case TaskClean:
		return "clean"
	case TaskSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// LibraryType names one of the genomic library collections that can be
// downloaded into a database.
type LibraryType string

const (
	LibraryArchaea    LibraryType = "archaea"
	LibraryBacteria   LibraryType = "bacteria"
	LibraryPlasmid    LibraryType = "plasmid"
	LibraryViral      LibraryType = "viral"
	LibraryPlant      LibraryType = "plant"
	LibraryProtozoa   LibraryType = "protozoa"
	LibraryFungi      LibraryType = "fungi"
	LibraryHuman      LibraryType = "human"
	LibraryNR         LibraryType = "nr"
	LibraryNT         LibraryType = "nt"
	LibraryUniVec     LibraryType = "UniVec"
	LibraryUniVecCore LibraryType = "UniVec_Core"
)

var libraryTypes = map[LibraryType]bool{
	LibraryArchaea:    true,
	LibraryBacteria:   true,
	LibraryPlasmid:    true,
	LibraryViral:      true,
	LibraryPlant:      true,
	LibraryProtozoa:   true,
	LibraryFungi:      true,
	LibraryHuman:      true,
	LibraryNR:         true,
	LibraryNT:         true,
	LibraryUniVec:     true,
	LibraryUniVecCore: true,
}

// ParseLibraryType validates s against the closed set of library names.
func ParseLibraryType(s string) (LibraryType, error) {
	lt := LibraryType(s)
	if !libraryTypes[lt] {
		return "", Detail(ErrUnknownLibraryType, "library", s)
	}
	return lt, nil
}

// SpecialType names one of the prepackaged 16S databases.
type SpecialType string

const (
	SpecialGreengenes SpecialType = "greengenes"
	SpecialSilva      SpecialType = "silva"
	SpecialRDP        SpecialType = "rdp"
)

var specialTypes = map[SpecialType]bool{
	SpecialGreengenes: true,
	SpecialSilva:      true,
	SpecialRDP:        true,
}

// ParseSpecialType validates s against the closed set of special databases.
func ParseSpecialType(s string) (SpecialType, error) {
	st := SpecialType(s)
	if !specialTypes[st] {
		return "", Detail(ErrUnknownSpecialType, "special", s)
	}
	return st, nil
}

// Task is the single selected build task together with its payload.
// Library is set for TaskDownloadLibrary, File for TaskAddToLibrary and
// Special for TaskSpecial; the remaining fields are zero.
type Task struct {
	Kind    TaskKind
	Library LibraryType
	File    string
	Special SpecialType
}

// TaskFlags mirrors the seven mutually exclusive task flags of the command
// line. A true boolean or a non-empty string marks its slot as populated.
type TaskFlags struct {
	DownloadTaxonomy bool
	DownloadLibrary  string
	AddToLibrary     string
	Build            bool
	Standard         bool
	Clean            bool
	Special          string
}

// SelectTask enforces the exactly-one-task invariant over the task flags and
// resolves subtype payloads against their closed enumerations. Zero or more
// than one populated slot is a usage error; the tool never guesses intent.
func SelectTask(f TaskFlags) (Task, error) {
	var tasks []Task

	if f.DownloadTaxonomy {
		tasks = append(tasks, Task{Kind: TaskDownloadTaxonomy})
	}
	if f.DownloadLibrary != "" {
		lib, err := ParseLibraryType(f.DownloadLibrary)
		if err != nil {
			return Task{}, err
		}
		tasks = append(tasks, Task{Kind: TaskDownloadLibrary, Library: lib})
	}
	if f.AddToLibrary != "" {
		tasks = append(tasks, Task{Kind: TaskAddToLibrary, File: f.AddToLibrary})
	}
	if f.Build {
		tasks = append(tasks, Task{Kind: TaskBuild})
	}
	if f.Standard {
		tasks = append(tasks, Task{Kind: TaskStandard})
	}
	if f.Clean {
		tasks = append(tasks, Task{Kind: TaskClean})
	}
	if f.Special != "" {
		special, err := ParseSpecialType(f.Special)
		if err != nil {
			return Task{}, err
		}
		tasks = append(tasks, Task{Kind: TaskSpecial, Special: special})
	}

	switch len(tasks) {
	case 0:
		return Task{}, ErrNoTaskSelected
	case 1:
		return tasks[0], nil
	default:
		return Task{}, Detail(ErrMultipleTasksSelected, "count", len(tasks))
	}
}
