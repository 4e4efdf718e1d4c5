// Package policy holds the compiled-in rules of the export scrubber: which
// archive members are read, which columns are always dropped, which header
// labels make a sheet sortable, and how output artifacts are named.
package policy

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	// WorkDirName is the subfolder of the archive's directory that members
	// are extracted into.
	WorkDirName = "itg_unzipped"

	// BackupFile is the deprecated backup export.
	BackupFile = "backup.csv"
	// ManagedBackupFile supersedes BackupFile when both are present.
	ManagedBackupFile = "backups-managed.csv"
	// ConfigurationsTable is the table whose rows are also filtered by status.
	ConfigurationsTable = "configurations"

	// ArchivedColumn flags retired rows with the value ArchivedValue.
	ArchivedColumn = "archived"
	ArchivedValue  = "Yes"
	// StatusColumn holds the configuration status; only ActiveStatus survives.
	StatusColumn = "configuration_status"
	ActiveStatus = "Active"

	// CustomerColumn is the zero-based position of the customer name.
	CustomerColumn = 1
)

// RecognizedFiles lists the archive members the scrubber reads. Everything
// else in an export is ignored.
var RecognizedFiles = []string{
	"applications-licensing.csv",
	"backup.csv",
	"backups-managed.csv",
	"battery-backup-ups.csv",
	"configurations.csv",
	"domain-hosting.csv",
	"email.csv",
	"file-sharing.csv",
	"internet-wan.csv",
	"lan.csv",
	"passwords.csv",
	"printing.csv",
	"vendors.csv",
	"voice-pbx-fax.csv",
	"wireless.csv",
}

// DenyColumns are dropped from every table regardless of content.
var DenyColumns = []string{
	"id",
	"organization",
	"Category",
	"Business Impact",
	"Client Subject Matter Expert",
	"Importance",
	"archived",
	"Backup Estimated Start Date",
	"FlexAssset Review Date",
	"FlexAsset Review Date",
	"Backup Radar Reporting Schedule",
	"hostname",
	"manufacturer",
	"position",
	"contact",
	"location",
	"configuration_interfaces",
	"DHCP Exclusions",
	"one_time_password",
	"Printer Management Login",
	"installed_by",
	"Equipment make & Model",
	"resource_type",
	"resource_id",
	"configuration_status",
	"asset_tag",
	"DHCP Server",
	"DHCP Scope",
	"DHCP Reservations",
	"DNS Server(s)",
	"Default Gateway Device",
	"Firewall",
	"Access Point(s)",
	"Wireless Controller (Application)",
	"Wireless Controller (Hardware)",
	"Management Credentials",
	"VLAN #",
	"Backup Radar Report Recipients (Email) or Link Contacts",
	"Backup Radar Reporting Notes",
	"Backup Server/NAS Management Login",
	"Local Backup Encryption Key",
	"Backup Copy Job Name",
	"Backup Copy Target",
	"Backup Copy Encryption",
	"Configuration Backup to Cloud Connect?",
	"SMB Login",
}

// SortColumns are header labels that, when left in the first column after
// filtering, make the sheet sorted by that column.
var SortColumns = []string{
	"Name",
	"name",
	"Hostname",
	"Printer Name",
	"Description",
	"Vendor Name",
}

var (
	recognizedSet = toSet(RecognizedFiles)
	denySet       = toSet(DenyColumns)
	sortSet       = toSet(SortColumns)
)

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// IsRecognized reports whether an archive member name is one of RecognizedFiles.
// Names are matched exactly, so members inside sub-folders never match.
func IsRecognized(name string) bool {
	_, ok := recognizedSet[name]
	return ok
}

// IsDenied reports whether a column is in the fixed deny set.
func IsDenied(column string) bool {
	_, ok := denySet[column]
	return ok
}

// IsSortColumn reports whether a header label makes a sheet sortable.
func IsSortColumn(column string) bool {
	_, ok := sortSet[column]
	return ok
}

// SelectFiles returns the extracted files to process, sorted by name.
// The deprecated backup export is dropped when the managed one is present.
func SelectFiles(names []string) []string {
	hasManaged := false
	for _, n := range names {
		if n == ManagedBackupFile {
			hasManaged = true
			break
		}
	}

	selected := make([]string, 0, len(names))
	for _, n := range names {
		if hasManaged && n == BackupFile {
			continue
		}
		selected = append(selected, n)
	}
	sort.Strings(selected)
	return selected
}

// TableName strips the extension from a recognized file name.
func TableName(file string) string {
	if idx := strings.Index(file, "."); idx >= 0 {
		return file[:idx]
	}
	return file
}

// WorkbookName is the output workbook file name for a customer.
func WorkbookName(customer string) string {
	return customer + "_export.xlsx"
}

// ZipName is the output archive file name for a customer.
func ZipName(customer string) string {
	return customer + "_export.zip"
}

// ErrorLogName is the name of the error log for the given day.
func ErrorLogName(day time.Time) string {
	return fmt.Sprintf("ITG_scrubber_errors_%s.txt", day.Format("2006-01-02"))
}
