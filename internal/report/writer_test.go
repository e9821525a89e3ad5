package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func samplePayments() *Table {
	return paymentTable([]PaymentRecord{
		{InvoiceNumber: "INV-20240510-ABC123", ClientName: "Ravi, K", Amount: 1500, Method: "upi", PaymentDate: day("2024-05-10")},
	})
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, samplePayments()))

	assert.Equal(t,
		"Invoice,Client,Amount,Method,Date,Note\n"+
			"INV-20240510-ABC123,\"Ravi, K\",1500.00,upi,2024-05-10,\n",
		buf.String())
}

func TestWriteCSV_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, attendanceTable(nil)))

	assert.Equal(t, "Date,Trainer,Status\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteXLSX(&buf, samplePayments()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Payments"}, f.GetSheetList())

	rows, err := f.GetRows("Payments")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Invoice", "Client", "Amount", "Method", "Date", "Note"}, rows[0])
	assert.Equal(t, "Ravi, K", rows[1][1])
	assert.Equal(t, "1500", rows[1][2])
	assert.Equal(t, "2024-05-10", rows[1][4])
}
