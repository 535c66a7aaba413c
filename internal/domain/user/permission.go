package user

type Permission string

const (
	// Own month
	PermissionRecordEditOwn Permission = "record.edit_own"
	PermissionReportViewOwn Permission = "report.view_own"
	PermissionReportApprove Permission = "report.self_approve"

	// Other employees' months
	PermissionReportViewAll  Permission = "report.view_all"
	PermissionReportEditNote Permission = "report.edit_notes"

	// Workflow
	PermissionManagerApprove Permission = "report.manager_approve"
	PermissionFinalize       Permission = "report.finalize"
	PermissionRemand         Permission = "report.remand"

	// Master data
	PermissionMasterView   Permission = "master.view"
	PermissionMasterManage Permission = "master.manage"

	// Employee management
	PermissionEmployeeManage Permission = "employee.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner: {
		// Owner has all permissions
		PermissionRecordEditOwn,
		PermissionReportViewOwn,
		PermissionReportApprove,
		PermissionReportViewAll,
		PermissionReportEditNote,
		PermissionManagerApprove,
		PermissionFinalize,
		PermissionRemand,
		PermissionMasterView,
		PermissionMasterManage,
		PermissionEmployeeManage,
	},
	RoleManager: {
		PermissionRecordEditOwn,
		PermissionReportViewOwn,
		PermissionReportApprove,
		PermissionReportViewAll,
		PermissionReportEditNote,
		PermissionManagerApprove,
		PermissionRemand,
		PermissionMasterView,
	},
	RoleAccounting: {
		PermissionRecordEditOwn,
		PermissionReportViewOwn,
		PermissionReportApprove,
		PermissionReportViewAll,
		PermissionReportEditNote,
		PermissionFinalize,
		PermissionRemand,
		PermissionMasterView,
	},
	RoleEmployee: {
		PermissionRecordEditOwn,
		PermissionReportViewOwn,
		PermissionReportApprove,
		PermissionMasterView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
