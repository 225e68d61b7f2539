// This package provides a set of structs and functions which are used
// to turn a list of threat sources into a table of geographic locations.
//
// threatmap is core of the project. The rest of the application is a thin
// CLI on top of it: it parses flags and a config, picks a provider and
// calls Threatmap.Run.
//
// A run is a linear pipeline. Sources are loaded from a JSON document,
// each IP address is resolved to a city by an offline Provider, resolved
// records are grouped by coordinates rounded to 5 decimal places and
// finally every group is written as a CSV row.
//
// Records which cannot be resolved (bad IP address, lookup miss, missing
// city, country or coordinates) are dropped silently. Nothing is logged
// or counted for them.
package threatmap
