package controllers

import (
	"errors"
	"net/http"

	"restaurant-backend/config"
	"restaurant-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type restaurantSettingsPayload struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Currency string `json:"currency"`
	Logo     string `json:"logo"`
}

func GetRestaurantSettings(c *gin.Context) {
	var restaurant models.RestaurantSetting
	if err := config.DB.First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"restaurant": models.RestaurantSetting{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

func UpdateRestaurantSettings(c *gin.Context) {
	var payload restaurantSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.RestaurantSetting
	err := config.DB.First(&restaurant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			restaurant = models.RestaurantSetting{
				Name:     payload.Name,
				Address:  payload.Address,
				Phone:    payload.Phone,
				Email:    payload.Email,
				Currency: payload.Currency,
				Logo:     payload.Logo,
			}
			if err := config.DB.Create(&restaurant).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	restaurant.Name = payload.Name
	restaurant.Address = payload.Address
	restaurant.Phone = payload.Phone
	restaurant.Email = payload.Email
	if payload.Currency != "" {
		restaurant.Currency = payload.Currency
	}
	restaurant.Logo = payload.Logo

	if err := config.DB.Save(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}
