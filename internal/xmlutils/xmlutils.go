// Package xmlutils provides XML-related utility functions used
// throughout the application.
package xmlutils

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// LoadXMLFile loads an XML file and returns the XML root node
func LoadXMLFile(xmlFilePath string) (*xmlpath.Node, error) {
	file, err := os.Open(xmlFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XML file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	root, err := xmlpath.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML file: %w", err)
	}

	return root, nil
}

// FirstOrDefault returns the first value matching an XPath expression,
// or the default when the path matches nothing or fails to compile.
func FirstOrDefault(node *xmlpath.Node, xpath, def string) string {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		log.WithError(err).WithField("xpath", xpath).Warn("Invalid XPath expression")
		return def
	}
	if value, ok := path.String(node); ok {
		return value
	}
	return def
}
