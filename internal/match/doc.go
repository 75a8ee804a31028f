// Package match ranks names by how close they are to a misspelled one.
//
// Names are compared after NormalizeIdent folds case and separators, so
// "barChart", "bar_chart" and "Bar-Chart" are the same name. Distances come
// from github.com/agnivade/levenshtein.
package match
