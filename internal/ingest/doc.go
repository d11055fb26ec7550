// Package ingest fetches spreadsheets from the remote sheets API and from
// local .xlsx workbooks, and turns every tab into a classified sheet.Sheet.
//
// Every external read is its own task in one errgroup: remote tab lists,
// then remote tab values, and each local workbook. The first failure
// cancels the rest and the whole ingestion fails; there is no retry.
package ingest
