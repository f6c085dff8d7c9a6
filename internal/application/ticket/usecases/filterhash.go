package usecases

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"alumnet/internal/domain/ticket"
)

// filterHash produces a stable cache key segment for a ticket filter.
// Every field participates so two filters collide only when they describe
// the same query.
func filterHash(f ticket.TicketFilter) string {
	h := sha256.New()

	writeField := func(name string, value interface{}) {
		fmt.Fprintf(h, "%s=%v;", name, value)
	}

	if f.Status != nil {
		writeField("status", *f.Status)
	}
	if f.Priority != nil {
		writeField("priority", *f.Priority)
	}
	if f.CategoryID != nil {
		writeField("category", *f.CategoryID)
	}
	if f.CreatorID != nil {
		writeField("creator", *f.CreatorID)
	}
	if f.AssigneeID != nil {
		writeField("assignee", *f.AssigneeID)
	}
	if f.Search != "" {
		writeField("search", f.Search)
	}
	if f.CreatedFrom != nil {
		writeField("from", f.CreatedFrom.Unix())
	}
	if f.CreatedTo != nil {
		writeField("to", f.CreatedTo.Unix())
	}
	writeField("sort_priority", f.SortByPriority)
	writeField("page", f.Page)
	writeField("size", f.PageSize)

	return hex.EncodeToString(h.Sum(nil))[:16]
}
