package parser

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
	"github.com/xuri/excelize/v2"
)

// ExtractProperties reads the core document properties.
// A created timestamp that is not RFC 3339 is dropped with a warning.
func ExtractProperties(f *excelize.File, logger logrus.FieldLogger) (models.Properties, error) {
	docProps, err := f.GetDocProps()
	if err != nil {
		return models.Properties{}, err
	}

	props := models.Properties{
		Title:   docProps.Title,
		Subject: docProps.Subject,
		Author:  docProps.Creator,
	}

	if docProps.Created != "" {
		created, err := time.Parse(time.RFC3339, docProps.Created)
		if err != nil {
			logger.WithField("created", docProps.Created).Warn("ignoring unparseable created property")
		} else {
			props.Created = &created
		}
	}

	return props, nil
}
