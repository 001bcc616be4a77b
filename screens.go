package main

import (
	"fmt"
	"strings"

	"github.com/Maishelbayeh/BringUs-sub000/datatable"
	"github.com/Maishelbayeh/BringUs-sub000/internal/catalog"
)

const (
	screenProducts     = "products"
	screenCategories   = "categories"
	screenOrders       = "orders"
	screenAffiliates   = "affiliates"
	screenTestimonials = "testimonials"
)

// screen ties one catalog table to its column layout, loader and
// optional extras (detail preview, filtered summary, link targets).
type screen struct {
	key     string
	title   datatable.Label
	columns []datatable.Column
	load    func(*catalog.Store) ([]datatable.Row, error)
	links   []datatable.LinkTarget

	// preview renders the cursor row as markdown for the side pane.
	preview func(datatable.Row, datatable.Lang) string

	// summarize turns the filtered subset into a footer line, e.g.
	// the revenue total for orders.
	summarize func([]datatable.Row, datatable.Lang) string
}

func dashboardScreens() []screen {
	return []screen{
		{
			key:   screenProducts,
			title: datatable.Label{En: "Products", Ar: "المنتجات"},
			columns: []datatable.Column{
				{Key: "image", Label: datatable.Label{En: "Image", Ar: "الصورة"}, Type: datatable.TypeImage},
				{Key: "name", Label: datatable.Label{En: "Name", Ar: "الاسم"}, Locked: true},
				{Key: "category", Label: datatable.Label{En: "Category", Ar: "الفئة"}},
				{Key: "price", Label: datatable.Label{En: "Price", Ar: "السعر"}, Type: datatable.TypeNumber},
				{Key: "stock", Label: datatable.Label{En: "Stock", Ar: "المخزون"}, Type: datatable.TypeNumber},
				{Key: "colors", Label: datatable.Label{En: "Colors", Ar: "الألوان"}, Type: datatable.TypeColor, NoControls: true},
				{Key: "status", Label: datatable.Label{En: "Status", Ar: "الحالة"}, Type: datatable.TypeStatus},
				{Key: "updated", Label: datatable.Label{En: "Updated", Ar: "آخر تحديث"}, Type: datatable.TypeDate, Hidden: true},
			},
			load: (*catalog.Store).Products,
			links: []datatable.LinkTarget{
				{Column: "name", Path: func(row datatable.Row) string {
					return fmt.Sprintf("/products/%v", row["id"])
				}},
			},
			preview: productPreview,
		},
		{
			key:   screenCategories,
			title: datatable.Label{En: "Categories", Ar: "الفئات"},
			columns: []datatable.Column{
				{Key: "name", Label: datatable.Label{En: "Name", Ar: "الاسم"}, Locked: true},
				{Key: "slug", Label: datatable.Label{En: "Slug", Ar: "المعرف"}, Type: datatable.TypeLink},
				{Key: "products", Label: datatable.Label{En: "Products", Ar: "المنتجات"}, Type: datatable.TypeNumber},
				{Key: "order", Label: datatable.Label{En: "Order", Ar: "الترتيب"}, Type: datatable.TypeNumber, Hidden: true},
				{Key: "status", Label: datatable.Label{En: "Status", Ar: "الحالة"}, Type: datatable.TypeStatus},
			},
			load: (*catalog.Store).Categories,
			links: []datatable.LinkTarget{
				{Column: "slug", Path: func(row datatable.Row) string {
					return fmt.Sprintf("/categories/%v", row["slug"])
				}},
			},
		},
		{
			key:   screenOrders,
			title: datatable.Label{En: "Orders", Ar: "الطلبات"},
			columns: []datatable.Column{
				{Key: "number", Label: datatable.Label{En: "Order #", Ar: "رقم الطلب"}, Type: datatable.TypeLink, Locked: true},
				{Key: "customer", Label: datatable.Label{En: "Customer", Ar: "العميل"}},
				{Key: "date", Label: datatable.Label{En: "Date", Ar: "التاريخ"}, Type: datatable.TypeDate},
				{Key: "items", Label: datatable.Label{En: "Items", Ar: "العناصر"}, Type: datatable.TypeNumber, Hidden: true},
				{Key: "total", Label: datatable.Label{En: "Total", Ar: "الإجمالي"}, Type: datatable.TypeNumber},
				{Key: "status", Label: datatable.Label{En: "Status", Ar: "الحالة"}, Type: datatable.TypeStatus},
			},
			load: (*catalog.Store).Orders,
			links: []datatable.LinkTarget{
				{Column: "number", Path: func(row datatable.Row) string {
					return fmt.Sprintf("/orders/%v", row["id"])
				}},
			},
			preview:   orderPreview,
			summarize: orderSummary,
		},
		{
			key:   screenAffiliates,
			title: datatable.Label{En: "Affiliate Payments", Ar: "دفعات الشركاء"},
			columns: []datatable.Column{
				{Key: "name", Label: datatable.Label{En: "Affiliate", Ar: "الشريك"}, Locked: true},
				{Key: "email", Label: datatable.Label{En: "Email", Ar: "البريد"}},
				{Key: "balance", Label: datatable.Label{En: "Balance", Ar: "الرصيد"}, Type: datatable.TypeNumber},
				{Key: "status", Label: datatable.Label{En: "Status", Ar: "الحالة"}, Type: datatable.TypeStatus},
				{Key: "lastPayment", Label: datatable.Label{En: "Last Payment", Ar: "آخر دفعة"}, Type: datatable.TypeDate},
			},
			load:      (*catalog.Store).Affiliates,
			summarize: affiliateSummary,
		},
		{
			key:   screenTestimonials,
			title: datatable.Label{En: "Testimonials", Ar: "آراء العملاء"},
			columns: []datatable.Column{
				{Key: "author", Label: datatable.Label{En: "Author", Ar: "الكاتب"}, Locked: true},
				{Key: "quote", Label: datatable.Label{En: "Quote", Ar: "الاقتباس"}},
				{Key: "rating", Label: datatable.Label{En: "Rating", Ar: "التقييم"}, Type: datatable.TypeNumber},
				{Key: "status", Label: datatable.Label{En: "Status", Ar: "الحالة"}, Type: datatable.TypeStatus},
				{Key: "date", Label: datatable.Label{En: "Date", Ar: "التاريخ"}, Type: datatable.TypeDate, Hidden: true},
			},
			load:    (*catalog.Store).Testimonials,
			preview: testimonialPreview,
		},
	}
}

func productPreview(row datatable.Row, lang datatable.Lang) string {
	name, _ := row["name"].(string)
	if lang == datatable.LangAr {
		if ar, _ := row["nameAr"].(string); ar != "" {
			name = ar
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)
	fmt.Fprintf(&b, "- **Category:** %v\n", row["category"])
	fmt.Fprintf(&b, "- **Price:** %v\n", row["price"])
	fmt.Fprintf(&b, "- **Stock:** %v\n", row["stock"])
	fmt.Fprintf(&b, "- **Status:** %v\n", row["status"])
	if desc, _ := row["description"].(string); desc != "" {
		fmt.Fprintf(&b, "\n%s\n", desc)
	}
	return b.String()
}

func orderPreview(row datatable.Row, lang datatable.Lang) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %v\n\n", row["number"])
	fmt.Fprintf(&b, "- **Customer:** %v\n", row["customer"])
	fmt.Fprintf(&b, "- **Date:** %v\n", row["date"])
	fmt.Fprintf(&b, "- **Items:** %v\n", row["items"])
	fmt.Fprintf(&b, "- **Total:** %v\n", row["total"])
	fmt.Fprintf(&b, "- **Status:** %v\n", row["status"])
	if notes, _ := row["notes"].(string); notes != "" {
		fmt.Fprintf(&b, "\n> %s\n", notes)
	}
	return b.String()
}

func testimonialPreview(row datatable.Row, lang datatable.Lang) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %v\n\n", row["author"])
	if quote, _ := row["quote"].(string); quote != "" {
		fmt.Fprintf(&b, "> %s\n\n", quote)
	}
	fmt.Fprintf(&b, "- **Rating:** %v/5\n", row["rating"])
	fmt.Fprintf(&b, "- **Date:** %v\n", row["date"])
	return b.String()
}

// orderSummary totals the visible order subset so filtering doubles as
// a quick revenue report.
func orderSummary(rows []datatable.Row, lang datatable.Lang) string {
	var total float64
	paid := 0
	for _, row := range rows {
		if v, ok := numericField(row, "total"); ok {
			total += v
		}
		if s, _ := row["status"].(string); s == "Paid" || s == "مدفوع" {
			paid++
		}
	}
	if lang == datatable.LangAr {
		return fmt.Sprintf("الإجمالي %.2f عبر %d طلبات (%d مدفوعة)", total, len(rows), paid)
	}
	return fmt.Sprintf("Total %.2f across %d orders (%d paid)", total, len(rows), paid)
}

func affiliateSummary(rows []datatable.Row, lang datatable.Lang) string {
	var owed float64
	for _, row := range rows {
		if s, _ := row["status"].(string); s != "Paid" && s != "مدفوع" {
			if v, ok := numericField(row, "balance"); ok {
				owed += v
			}
		}
	}
	if lang == datatable.LangAr {
		return fmt.Sprintf("مستحقات غير مدفوعة %.2f", owed)
	}
	return fmt.Sprintf("Outstanding balance %.2f", owed)
}

func numericField(row datatable.Row, key string) (float64, bool) {
	switch v := row[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
