package pagetable

// Package pagetable provides page-number pagination primitives for tabular
// views.
//
// Overview
//
// pagetable splits an ordered record list into fixed-size pages and computes
// everything a paginated table needs to draw itself:
//   - Slice: the records of the requested page.
//   - PadCount: filler rows that keep the table height constant.
//   - PageWindow: truncated page-number controls with ellipsis markers.
//   - Navigate: previous/next/jump transitions over PageState.
//
// Key concepts
//   - PageState: current page, page size and total number of items. It is an
//     explicit value owned by the caller; every function here is pure.
//   - View: the bundle of outputs consumed by a presentation layer.
//   - Orderings: multi-column sorting, applied in memory via Getters or to a
//     GORM query.
//
// The source package provides record sources (static, HTTP, SQL) and the view
// package owns a PageState together with an asynchronously loaded list.
