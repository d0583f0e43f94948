package schema

import (
	// Packages
	uitable "github.com/mutablelogic/go-apiframe/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TaskTable implements table.TableData for a list of tasks
type TaskTable []Task

// AccountTable implements table.TableData for account details
type AccountTable struct {
	*Account
}

var _ uitable.TableData = TaskTable(nil)
var _ uitable.TableData = AccountTable{}

///////////////////////////////////////////////////////////////////////////////
// TASK TABLE

func (t TaskTable) Header() []string {
	return []string{"TASK", "TYPE", "STATUS", "PROGRESS", "IMAGES", "ERROR"}
}

func (t TaskTable) Len() int {
	return len(t)
}

func (t TaskTable) Row(i int) []any {
	task := t[i]
	images := task.ImageUrls
	if len(images) == 0 && task.ImageUrl != "" {
		images = []string{task.ImageUrl}
	}
	progress := task.Percentage.String()
	if progress != "" {
		progress += "%"
	}
	return []any{uitable.Bold{Value: task.TaskId}, task.TaskType, task.Status, progress, images, task.Err()}
}

///////////////////////////////////////////////////////////////////////////////
// ACCOUNT TABLE

func (t AccountTable) Header() []string {
	return []string{"EMAIL", "PLAN", "CREDITS", "IMAGES", "NEXT BILLING"}
}

func (t AccountTable) Len() int {
	if t.Account == nil {
		return 0
	}
	return 1
}

func (t AccountTable) Row(i int) []any {
	return []any{uitable.Bold{Value: t.Email}, t.Plan, t.Credits, t.TotalImages, t.NextBillingDate}
}
