package domain

// External executables the check drives.
const (
	ToolGit                  = "git"
	ToolCMake                = "cmake"
	ToolABIDumper            = "abi-dumper"
	ToolABIComplianceChecker = "abi-compliance-checker"
)

// CompareTools lists every executable a comparison needs.
func CompareTools() []string {
	return []string{ToolGit, ToolCMake, ToolABIDumper, ToolABIComplianceChecker}
}
