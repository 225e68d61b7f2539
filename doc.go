// Threatmap is a tool to see where threats come from.
//
// Idea is simple: you have a list of IP addresses which attacked you,
// each with a number of hits. And you want to know which cities these
// hits come from. So, this is a geolocation and grouping task.
//
// Tool itself is organized into 3 logical parts:
//
// Threatmap
//
// threatmap is a main package of the application which contains a
// pipeline: it loads threat sources, resolves them and groups by
// location rounded to 5 decimal places.
//
// Providers
//
// This package has offline providers which read MaxMind DB files and a
// downloader for GeoLite2 City database.
//
// Main
//
// A main package wires both threatmap and providers. Run it without
// arguments in a directory with threat_sources.json and
// geoip2/city.mmdb and it writes locations.csv.
package main
