package adminControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/middleware"
)

func writeWorkbook(c *gin.Context, file *xlsx.File, filename string) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}

// GET /admin/export/products
func ExportProducts(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := client.Products(c.Request.Context(), middleware.CookieFrom(c))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to fetch products")})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Description", "Price", "Stock", "CategoryID", "Images"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.CategoryID)
			row.AddCell().SetValue(strings.Join(p.Image, ","))
		}

		writeWorkbook(c, file, "products.xlsx")
	}
}

// GET /admin/export/orders
func ExportOrders(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := client.Orders(c.Request.Context(), middleware.CookieFrom(c))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Unable to get orders")})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "UserID", "Status", "TotalAmount", "PaymentMethod", "CreatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(o.PaymentMethod)
			row.AddCell().SetValue(o.CreatedAt)
		}

		writeWorkbook(c, file, "orders.xlsx")
	}
}
