package builder

import (
	"context"
	"fmt"

	"github.com/vk/cfgdot/internal/config"
	"github.com/vk/cfgdot/internal/ctxlog"
	"github.com/vk/cfgdot/internal/model"
)

// buildDataSources registers every child of the data root. Every child must
// carry a class; a repeated name keeps the first definition.
func (b *builder) buildDataSources(ctx context.Context, appCur config.Cursor) error {
	logger := ctxlog.FromContext(ctx)

	dataCur, err := appCur.Child(b.conv.DataRoot)
	if err != nil {
		return fmt.Errorf("failed to locate data sources: %w", err)
	}

	for _, dsCur := range dataCur.Children() {
		class, err := dsCur.Read(b.conv.ClassAttribute)
		if err != nil {
			return fmt.Errorf("failed to read data source: %w", err)
		}
		name := dsCur.LocalName()
		if _, inserted := b.app.DataSources.Add(name, &model.DataSource{Name: name, Class: class}); !inserted {
			logger.Warn("Duplicate data source definition found, keeping the first one.", "data_source", name, "path", dsCur.Location())
			continue
		}
		logger.Debug("Registered data source.", "data_source", name, "class", class)
	}
	return nil
}
