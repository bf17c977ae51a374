// Package tools is the catalog of operations the MCP server exposes.
//
// Every entity kind (subjects, invoices, expenses, generators) gets the same
// list/get/create/update/delete operations from one generic Entity
// definition; invoices and expenses add lifecycle events, payments and
// messages on top. An operation never returns an error to its caller: the
// catalog renders every outcome, failures included, as envelope JSON.
package tools
