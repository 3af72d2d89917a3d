package timeline

import (
	"fmt"
	"strings"

	"github.com/chrono-board/api-go/models"
)

type kindKey struct {
	Type   ItemType
	Action string
}

// badgeTable is the closed mapping from file actions to display badges.
// Event and action item types carry a fixed badge regardless of action.
var badgeTable = map[string]string{
	models.ActionUploaded:  "Upload",
	models.ActionDeleted:   "Delete",
	models.ActionRenamed:   "Rename",
	models.ActionCreated:   "Create",
	models.ActionUpdated:   "Update",
	models.ActionCompleted: "Complete",
}

// iconTable is the closed (type, action) to icon tag mapping. Unmapped
// combinations fall back to defaultIcon; the table is asserted complete over
// the known action set by tests.
var iconTable = map[kindKey]string{
	{TypeEvent, models.ActionCreated}:        "calendar",
	{TypeEvent, models.ActionUpdated}:        "calendar",
	{TypeEvent, models.ActionDeleted}:        "trash",
	{TypeActionItem, models.ActionCreated}:   "list-check",
	{TypeActionItem, models.ActionUpdated}:   "list-check",
	{TypeActionItem, models.ActionCompleted}: "check-circle",
	{TypeActionItem, models.ActionDeleted}:   "trash",
	{TypeFile, models.ActionUploaded}:        "upload",
	{TypeFile, models.ActionDeleted}:         "trash",
	{TypeFile, models.ActionRenamed}:         "edit",
	{TypeFile, models.ActionCreated}:         "file-plus",
	{TypeFile, models.ActionUpdated}:         "file",
}

const (
	defaultIcon = "file"
	linkIcon    = "external-link"
)

// Badge returns the display badge for an item. Unrecognized file actions
// title-case the raw action string instead of failing.
func Badge(item Item) string {
	switch item.Type {
	case TypeEvent:
		return "Event"
	case TypeActionItem:
		return "Action Item"
	default:
		if badge, ok := badgeTable[item.Action]; ok {
			return badge
		}
		if item.Action == "" {
			return "File"
		}
		return titleCase(item.Action)
	}
}

// IconTag returns the semantic icon tag for an item. Link documents always
// render with the link icon.
func IconTag(item Item) string {
	if item.ResourceType == models.ResourceURL || item.Details["doc_type"] == models.DocTypeURL {
		return linkIcon
	}
	if icon, ok := iconTable[kindKey{item.Type, item.Action}]; ok {
		return icon
	}
	return defaultIcon
}

// Describe builds the human-readable sentence for an item. Document-sourced
// items describe the stored file; activity-sourced items describe the actor's
// action. Unknown actions fall back to a generic template, so the function is
// total over any (type, action, resourceType) triple.
func Describe(item Item) string {
	if item.FromDocumentRow() {
		return describeDocument(item)
	}

	actor := item.Actor
	if actor == "" {
		actor = "Someone"
	}
	noun := resourceNoun(item.ResourceType)

	switch item.Action {
	case models.ActionCreated:
		return fmt.Sprintf("%s created %s %q", actor, noun, item.Title)
	case models.ActionUpdated:
		return fmt.Sprintf("%s updated %s %q", actor, noun, item.Title)
	case models.ActionUploaded:
		return fmt.Sprintf("%s uploaded %s %q", actor, noun, item.Title)
	case models.ActionDeleted:
		return fmt.Sprintf("%s deleted %s %q", actor, noun, item.Title)
	case models.ActionCompleted:
		return fmt.Sprintf("%s completed %s %q", actor, noun, item.Title)
	case models.ActionRenamed:
		oldName := detailString(item.Details, "old_name")
		newName := detailString(item.Details, "new_name")
		return fmt.Sprintf("%s renamed %s from %q to %q", actor, noun, oldName, newName)
	default:
		return fmt.Sprintf("%s performed %s on %s %q", actor, item.Action, noun, item.Title)
	}
}

// Annotate fills Description, Badge and Icon on every item in place.
func Annotate(items []Item) {
	for i := range items {
		items[i].Description = Describe(items[i])
		items[i].Badge = Badge(items[i])
		items[i].Icon = IconTag(items[i])
	}
}

func describeDocument(item Item) string {
	docType, _ := item.Details["doc_type"].(string)
	if docType == models.DocTypeURL {
		return "URL uploaded"
	}
	if docType == "" || docType == models.DocTypeOther {
		return "File uploaded"
	}
	return strings.ToUpper(docType) + " file uploaded"
}

func resourceNoun(resourceType string) string {
	switch resourceType {
	case models.ResourceActionItem:
		return "action item"
	case "":
		return "resource"
	default:
		return resourceType
	}
}

func detailString(details map[string]interface{}, key string) string {
	if s, ok := details[key].(string); ok {
		return s
	}
	return ""
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
