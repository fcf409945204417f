// Package excel exporta el libro de movimientos a xlsx.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tiservices/backoffice-api/internal/application/inventory"
	"github.com/tiservices/backoffice-api/internal/domain/entity"
)

var _ inventory.Exporter = (*MovementExporter)(nil)

// MovementExporter genera un archivo xlsx con un asiento por fila.
type MovementExporter struct{}

// NewMovementExporter construye el exportador.
func NewMovementExporter() *MovementExporter {
	return &MovementExporter{}
}

// Export escribe los movimientos en una hoja y devuelve los bytes del archivo.
func (e *MovementExporter) Export(movs []*entity.Movement) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"fecha",
		"tipo",
		"cantidad",
		"articulo",
		"marca",
		"modelo",
		"comentario",
		"usuario",
		"almacen",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: escribir encabezado: %w", err)
	}

	row := 2
	for _, m := range movs {
		var descripcion, marca, modelo string
		if m.Item.Snapshot != nil {
			descripcion = m.Item.Snapshot.Descripcion
			marca = m.Item.Snapshot.Marca
			modelo = m.Item.Snapshot.Modelo
		}
		excelRow := []interface{}{
			m.Fecha.Format("2006-01-02 15:04"),
			m.Tipo,
			m.Cantidad,
			descripcion,
			marca,
			modelo,
			m.Comentario,
			m.Usuario,
			m.Almacen,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("excel: celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("excel: escribir fila: %w", err)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar: %w", err)
	}
	return buf.Bytes(), nil
}
