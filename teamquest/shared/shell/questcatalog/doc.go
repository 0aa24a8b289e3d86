// Package questcatalog loads the quest catalog from YAML. A default catalog is embedded.
package questcatalog
