package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// TallyVoucher is the fully resolved input of the Tally XML serializer.
// All numbers are read from the finalized invoice; BuildTallyXML performs
// string formatting only.
type TallyVoucher struct {
	InvoiceNumber string
	InvoiceDate   time.Time
	PartyName     string
	GrandTotal    float64
	Items         []TallyVoucherItem
}

// TallyVoucherItem is one inventory entry of the voucher.
type TallyVoucherItem struct {
	ProductName string
	UnitPrice   float64
	Quantity    int
}

// unknownPartyName is emitted when the invoice's enquiry no longer resolves.
const unknownPartyName = "Unknown"

// LoadTallyVoucher resolves an invoice and its referenced records into a
// TallyVoucher. The party name falls back to a literal placeholder when the
// linked enquiry record is absent; a missing product is an error because the
// importer rejects vouchers with empty stock item names.
func LoadTallyVoucher(app core.App, invoiceID string) (*TallyVoucher, error) {
	invoice, err := app.FindRecordById("invoices", invoiceID)
	if err != nil {
		return nil, fmt.Errorf("%w: invoice %s", ErrNotFound, invoiceID)
	}

	partyName := unknownPartyName
	if enquiry, err := app.FindRecordById("enquiries", invoice.GetString("enquiry")); err == nil {
		partyName = enquiry.GetString("name")
	}

	voucher := &TallyVoucher{
		InvoiceNumber: invoice.GetString("invoice_number"),
		InvoiceDate:   invoice.GetDateTime("invoice_date").Time(),
		PartyName:     partyName,
		GrandTotal:    invoice.GetFloat("grand_total"),
	}

	for _, item := range recordItems(invoice) {
		product, err := app.FindRecordById("products", item.Product)
		if err != nil {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, item.Product)
		}
		voucher.Items = append(voucher.Items, TallyVoucherItem{
			ProductName: product.GetString("name"),
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}

	return voucher, nil
}

// BuildTallyXML serializes a voucher into the Tally import envelope.
// The layout is a fixed byte-exact contract with the external importer:
// identical voucher state always yields identical bytes, since the importer
// may reject or duplicate-import on drift.
func BuildTallyXML(v *TallyVoucher) []byte {
	var b strings.Builder

	party := xmlEscape(v.PartyName)

	b.WriteString("<ENVELOPE>\n")
	b.WriteString("  <HEADER><TALLYREQUEST>Import Data</TALLYREQUEST></HEADER>\n")
	b.WriteString("  <BODY><IMPORTDATA><REQUESTDESC><REPORTNAME>Vouchers</REPORTNAME></REQUESTDESC>\n")
	b.WriteString("    <REQUESTDATA><TALLYMESSAGE xmlns:UDF=\"TallyUDF\">\n")
	b.WriteString("      <VOUCHER VCHTYPE=\"Sales\" ACTION=\"Create\" OBJVIEW=\"Invoice Voucher View\">\n")
	fmt.Fprintf(&b, "        <DATE>%s</DATE>\n", v.InvoiceDate.UTC().Format("20060102"))
	b.WriteString("        <VOUCHERTYPENAME>Sales</VOUCHERTYPENAME>\n")
	fmt.Fprintf(&b, "        <VOUCHERNUMBER>%s</VOUCHERNUMBER>\n", xmlEscape(v.InvoiceNumber))
	fmt.Fprintf(&b, "        <PARTYLEDGERNAME>%s</PARTYLEDGERNAME>\n", party)
	b.WriteString("        <ALLLEDGERENTRIES.LIST>\n")
	fmt.Fprintf(&b, "          <LEDGERNAME>%s</LEDGERNAME>\n", party)
	b.WriteString("          <ISDEEMEDPOSITIVE>Yes</ISDEEMEDPOSITIVE>\n")
	fmt.Fprintf(&b, "          <AMOUNT>-%s</AMOUNT>\n", FormatAmount(v.GrandTotal))
	b.WriteString("        </ALLLEDGERENTRIES.LIST>\n")

	for _, item := range v.Items {
		b.WriteString("        <INVENTORYENTRIES.LIST>\n")
		fmt.Fprintf(&b, "          <STOCKITEMNAME>%s</STOCKITEMNAME>\n", xmlEscape(item.ProductName))
		b.WriteString("          <ISDEEMEDPOSITIVE>No</ISDEEMEDPOSITIVE>\n")
		fmt.Fprintf(&b, "          <RATE>%s/Nos</RATE>\n", FormatAmount(item.UnitPrice))
		fmt.Fprintf(&b, "          <AMOUNT>%s</AMOUNT>\n", FormatAmount(item.UnitPrice*float64(item.Quantity)))
		fmt.Fprintf(&b, "          <ACTUALQTY> %d Nos</ACTUALQTY>\n", item.Quantity)
		fmt.Fprintf(&b, "          <BILLEDQTY> %d Nos</BILLEDQTY>\n", item.Quantity)
		b.WriteString("        </INVENTORYENTRIES.LIST>\n")
	}

	b.WriteString("      </VOUCHER>\n")
	b.WriteString("    </TALLYMESSAGE></REQUESTDATA>\n")
	b.WriteString("  </IMPORTDATA></BODY>\n")
	b.WriteString("</ENVELOPE>\n")

	return []byte(b.String())
}

// TallyFileName is the attachment name for an exported voucher.
func TallyFileName(invoiceNumber string) string {
	return fmt.Sprintf("Tally_Invoice_%s.xml", invoiceNumber)
}

// ExportTallyVoucher loads the invoice, serializes the voucher and marks the
// invoice as exported. The bytes are built before the flag write, so a
// failed save cannot yield output that differs from the stored state.
func ExportTallyVoucher(app core.App, invoiceID string) ([]byte, string, error) {
	voucher, err := LoadTallyVoucher(app, invoiceID)
	if err != nil {
		return nil, "", err
	}

	xml := BuildTallyXML(voucher)

	invoice, err := app.FindRecordById("invoices", invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invoice %s", ErrNotFound, invoiceID)
	}
	invoice.Set("tally_exported", true)
	if err := app.Save(invoice); err != nil {
		return nil, "", fmt.Errorf("mark invoice exported: %w", err)
	}

	return xml, TallyFileName(voucher.InvoiceNumber), nil
}

var xmlReplacer = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}
