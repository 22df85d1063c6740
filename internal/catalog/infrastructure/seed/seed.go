// Package seed loads the sample ceramics catalog. It runs only when the
// products table is empty.
package seed

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/olaria/storefront/internal/catalog/domain"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Run inserts the sample products unless the catalog already has rows.
func Run(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []domain.Product{
		{
			Name:          "Vaza Ceramică Tradițională cu Motive Etnice",
			Description:   "Vază handmade din ceramică, decorată cu motive tradiționale românești. Fiecare piesă este unică, modelată și arsă manual folosind tehnici străvechi.",
			Price:         price("150.00"),
			Category:      "Vaze",
			ImageURL:      "/static/images/products/vaza_1.jpg",
			ImageSource:   "Leonardo AI",
			Featured:      true,
			InStock:       true,
			StockQuantity: 3,
		},
		{
			Name:          "Vaza Ceramică cu Ornamente Geometrice",
			Description:   "Vază elegantă din lut natural cu ornamente geometrice incizate manual. Perfect pentru flori sau ca obiect decorativ de sine stătător.",
			Price:         price("120.00"),
			Category:      "Vaze",
			ImageURL:      "/static/images/products/vaza_2.jpg",
			ImageSource:   "Leonardo AI",
			InStock:       true,
			StockQuantity: 2,
		},
		{
			Name:          "Vaza Ceramică cu Design Celtic",
			Description:   "Vază artistică cu design inspirat din arta celtică, realizată manual din argila naturală și arsă în cuptor traditional.",
			Price:         price("180.00"),
			Category:      "Vaze",
			ImageURL:      "/static/images/products/vaza_3.jpg",
			ImageSource:   "Leonardo AI",
			Featured:      true,
			InStock:       true,
			StockQuantity: 1,
		},
		{
			Name:          "Ghiveci Ceramic Multicolor pentru Plante",
			Description:   "Ghiveci handmade din ceramică cu glazură multicoloră în nuanțe de roz, albastru și galben. Perfect pentru plantele de interior.",
			Price:         price("85.00"),
			Category:      "Ghivece",
			ImageURL:      "/static/images/products/ghiveci_1.jpg",
			ImageSource:   "Leonardo AI",
			InStock:       true,
			StockQuantity: 4,
		},
		{
			Name:          "Ghiveci Ceramic cu Formă Organică",
			Description:   "Ghiveci artistic cu formă organică și glazură în nuanțe de turcoaz și teracotă. Ideal pentru succulente și plante mici.",
			Price:         price("95.00"),
			Category:      "Ghivece",
			ImageURL:      "/static/images/products/ghiveci_2.jpg",
			ImageSource:   "Leonardo AI",
			Featured:      true,
			InStock:       true,
			StockQuantity: 3,
		},
		{
			Name:          "Ghiveci Ceramic cu Glazură Degrade",
			Description:   "Ghiveci rotund cu efect de glazură degrade în nuanțe naturale. Realizat manual cu atenție la detalii.",
			Price:         price("75.00"),
			Category:      "Ghivece",
			ImageURL:      "/static/images/products/ghiveci_3.jpg",
			ImageSource:   "Leonardo AI",
			InStock:       true,
			StockQuantity: 5,
		},
		{
			Name:          "Cercei Ceramici cu Motive Florale",
			Description:   "Cercei handmade din ceramică cu motive florale delicate sculptate manual. Ușori și confortabili de purtat.",
			Price:         price("45.00"),
			Category:      "Cercei",
			ImageURL:      "/static/images/products/cercei_1.jpg",
			ImageSource:   "Leonardo AI",
			InStock:       true,
			StockQuantity: 6,
		},
		{
			Name:          "Cercei Ceramici cu Design Abstract",
			Description:   "Cercei artistici cu design abstract modern, realizați din argila naturală și finisați cu glazură mată.",
			Price:         price("38.00"),
			Category:      "Cercei",
			ImageURL:      "/static/images/products/cercei_2.jpg",
			ImageSource:   "Leonardo AI",
			Featured:      true,
			InStock:       true,
			StockQuantity: 8,
		},
		{
			Name:          "Cercei Ceramici Minimali în Formă de Picătură",
			Description:   "Cercei eleganți și minimali în formă de picătură, realizați din ceramică arsă la temperaturi înalte.",
			Price:         price("42.00"),
			Category:      "Cercei",
			ImageURL:      "/static/images/products/cercei_3.jpg",
			ImageSource:   "Leonardo AI",
			InStock:       true,
			StockQuantity: 7,
		},
		{
			Name:          "Cercei Ceramici cu Model Radial",
			Description:   "Cercei unici cu model radial sculptat manual, în nuanță naturală de teracotă. Design contemporan și elegant.",
			Price:         price("48.00"),
			Category:      "Cercei",
			ImageURL:      "/static/images/products/cercei_4.jpg",
			ImageSource:   "Leonardo AI",
			InStock:       true,
			StockQuantity: 4,
		},
		{
			Name:          "Statuetă Ceramică - Înger Copil",
			Description:   "Statuetă delicată din ceramică albă reprezentând un înger copil în poziție de rugăciune. Lucrare artistică cu atenție la detalii.",
			Price:         price("95.00"),
			Category:      "Obiecte Decorative",
			ImageURL:      "/static/images/products/statuie_1.jpg",
			ImageSource:   "Leonardo AI",
			Featured:      true,
			InStock:       true,
			StockQuantity: 2,
			AudioURL:      "/static/audio/ceramic_ambient.mp3",
			AudioSource:   "AIVA",
		},
	}

	return db.WithContext(ctx).Create(&products).Error
}
